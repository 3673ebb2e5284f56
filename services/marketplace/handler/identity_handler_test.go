package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp, w
}

// Test RegisterHandler
func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", handler.RegisterHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.RegisterRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "secret123",
				Role:     "seller",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "secret123", model.RoleSeller).
					Return(model.User{UserID: 1, Name: "Alice", Email: "alice@example.com", Role: model.RoleSeller}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user registered successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_email",
			requestBody: helpers.RegisterRequest{
				Name:     "Alice",
				Password: "secret123",
				Role:     "seller",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_email",
			requestBody: helpers.RegisterRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "secret123",
				Role:     "seller",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "secret123", model.RoleSeller).
					Return(model.User{}, auctionerrors.ErrDuplicateEmail)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already exists",
		},
		{
			name: "bad_role",
			requestBody: helpers.RegisterRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "secret123",
				Role:     "admin",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "secret123", model.Role("admin")).
					Return(model.User{}, auctionerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid input",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			resp, w := performRequest(t, router, http.MethodPost, "/auth/register", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.expectedStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, float64(1), data["user_id"])
				require.Equal(t, "Alice", data["name"])
				require.Equal(t, "seller", data["role"])
				require.NotContains(t, data, "password_hash")
			}
		})
	}
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", handler.LoginHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.LoginRequest{Email: "alice@example.com", Password: "secret123"},
			mockSetup: func() {
				mockService.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "secret123").
					Return(model.User{UserID: 1, Name: "Alice", Email: "alice@example.com", Role: model.RoleSeller}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "wrong_password",
			requestBody: helpers.LoginRequest{Email: "alice@example.com", Password: "nope"},
			mockSetup: func() {
				mockService.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "nope").
					Return(model.User{}, auctionerrors.ErrInvalidCredential)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "unknown_email",
			requestBody: helpers.LoginRequest{Email: "ghost@example.com", Password: "secret123"},
			mockSetup: func() {
				mockService.EXPECT().
					Authenticate(gomock.Any(), "ghost@example.com", "secret123").
					Return(model.User{}, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing_password",
			requestBody:    helpers.LoginRequest{Email: "alice@example.com"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			resp, w := performRequest(t, router, http.MethodPost, "/auth/login", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "alice@example.com", data["email"])
				require.NotContains(t, data, "password_hash")
			}
		})
	}
}

// Test GetUserHandler
func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:user_id", handler.GetUserHandler)

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().
			GetByID(gomock.Any(), int64(3)).
			Return(model.User{UserID: 3, Name: "Carol", Email: "carol@example.com", Role: model.RoleBuyer}, nil)

		resp, w := performRequest(t, router, http.MethodGet, "/users/3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "Carol", data["name"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(model.User{}, auctionerrors.ErrNotFound)

		_, w := performRequest(t, router, http.MethodGet, "/users/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed_id", func(t *testing.T) {
		_, w := performRequest(t, router, http.MethodGet, "/users/abc", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
