package identity

import (
	"context"
	"errors"
	"testing"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests Register
func TestIdentityService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockIdentityDB(ctrl)
	service := NewIdentityService(mockRepo)

	ctx := context.Background()

	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		role          model.Role
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:     "valid_buyer",
			userName: "Bob",
			email:    "bob@example.com",
			password: "secret123",
			role:     model.RoleBuyer,
			mockSetup: func() {
				mockRepo.EXPECT().
					CreateUser(ctx, "Bob", "bob@example.com", gomock.Any(), model.RoleBuyer).
					DoAndReturn(func(_ context.Context, name, email, hash string, role model.Role) (model.User, error) {
						// service must store a verifiable bcrypt hash, never the plaintext
						require.NotEqual(t, "secret123", hash)
						require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
						return model.User{UserID: 1, Name: name, Email: email, PasswordHash: hash, Role: role}, nil
					})
			},
		},
		{
			name:          "empty_name",
			userName:      "",
			email:         "bob@example.com",
			password:      "secret123",
			role:          model.RoleBuyer,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "empty_password",
			userName:      "Bob",
			email:         "bob@example.com",
			password:      "",
			role:          model.RoleBuyer,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "unrecognized_role",
			userName:      "Bob",
			email:         "bob@example.com",
			password:      "secret123",
			role:          model.Role("admin"),
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:     "duplicate_email",
			userName: "Bob",
			email:    "taken@example.com",
			password: "secret123",
			role:     model.RoleSeller,
			mockSetup: func() {
				mockRepo.EXPECT().
					CreateUser(ctx, "Bob", "taken@example.com", gomock.Any(), model.RoleSeller).
					Return(model.User{}, auctionerrors.ErrDuplicateEmail)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrDuplicateEmail,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			user, err := service.Register(ctx, tc.userName, tc.email, tc.password, tc.role)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.userName, user.Name)
			require.Equal(t, tc.email, user.Email)
			require.Equal(t, tc.role, user.Role)
			require.Empty(t, user.PasswordHash, "credential hash must not leave the service")
		})
	}
}

// Tests Authenticate
func TestIdentityService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockIdentityDB(ctrl)
	service := NewIdentityService(mockRepo)

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := model.User{
		UserID:       7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleSeller,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func()
		expectedError error
	}{
		{
			name:     "correct_credentials",
			email:    "alice@example.com",
			password: "correct-horse",
			mockSetup: func() {
				mockRepo.EXPECT().GetUserByEmail(ctx, "alice@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong_password",
			email:    "alice@example.com",
			password: "battery-staple",
			mockSetup: func() {
				mockRepo.EXPECT().GetUserByEmail(ctx, "alice@example.com").Return(stored, nil)
			},
			expectedError: auctionerrors.ErrInvalidCredential,
		},
		{
			name:     "unknown_email",
			email:    "nobody@example.com",
			password: "whatever",
			mockSetup: func() {
				mockRepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").Return(model.User{}, auctionerrors.ErrNotFound)
			},
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:          "empty_email",
			email:         "",
			password:      "whatever",
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			user, err := service.Authenticate(ctx, tc.email, tc.password)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, stored.UserID, user.UserID)
			require.Equal(t, stored.Name, user.Name)
			require.Equal(t, stored.Email, user.Email)
			require.Equal(t, stored.Role, user.Role)
			require.Empty(t, user.PasswordHash, "credential hash must not leave the service")
		})
	}
}

// Tests GetByID
func TestIdentityService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockIdentityDB(ctrl)
	service := NewIdentityService(mockRepo)

	ctx := context.Background()

	tests := []struct {
		name          string
		userID        int64
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "existing_user",
			userID: 3,
			mockSetup: func() {
				mockRepo.EXPECT().GetUserByID(ctx, int64(3)).Return(model.User{
					UserID:       3,
					Name:         "Carol",
					Email:        "carol@example.com",
					PasswordHash: "some-hash",
					Role:         model.RoleBuyer,
				}, nil)
			},
		},
		{
			name:   "missing_user",
			userID: 42,
			mockSetup: func() {
				mockRepo.EXPECT().GetUserByID(ctx, int64(42)).Return(model.User{}, auctionerrors.ErrNotFound)
			},
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:          "non_positive_id",
			userID:        0,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			user, err := service.GetByID(ctx, tc.userID)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.userID, user.UserID)
			require.Empty(t, user.PasswordHash)
		})
	}
}
