package handler

import (
	"context"
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type IdentityServiceInterface interface {
	Register(ctx context.Context, name, email, password string, role model.Role) (model.User, error)
	Authenticate(ctx context.Context, email, password string) (model.User, error)
	GetByID(ctx context.Context, userID int64) (model.User, error)
}

type IdentityHandler struct {
	service IdentityServiceInterface
}

func NewIdentityHandler(service IdentityServiceInterface) *IdentityHandler {
	return &IdentityHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *IdentityHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterHandler: failed to register user", map[string]any{
			"handler": "RegisterHandler",
			"email":   req.Email,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toUserResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
		"role":    string(user.Role),
	})
}

// LoginHandler handles POST /auth/login
func (h *IdentityHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: authentication failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toUserResponse(user), "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.UserID,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *IdentityHandler) GetUserHandler(c *gin.Context) {
	userID, ok := parseIDParam(c, "GetUserHandler", "user_id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toUserResponse(user), "user retrieved successfully")
}

func toUserResponse(user model.User) helpers.UserResponse {
	return helpers.UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
	}
}
