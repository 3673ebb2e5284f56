package identity

import (
	"context"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// IdentityService defines the business logic for registration and authentication
type IdentityService struct {
	repo repository.IdentityDB
}

// NewIdentityService creates a new IdentityService instance
func NewIdentityService(repo repository.IdentityDB) *IdentityService {
	return &IdentityService{
		repo: repo,
	}
}

// Register creates a new user with a freshly salted bcrypt hash of the password
func (s *IdentityService) Register(ctx context.Context, name, email, password string, role model.Role) (model.User, error) {
	if name == "" || email == "" || password == "" {
		return model.User{}, fmt.Errorf("service: %w - name, email and password are required", auctionerrors.ErrValidation)
	}
	if !role.Valid() {
		return model.User{}, fmt.Errorf("service: %w - role must be %q or %q", auctionerrors.ErrValidation, model.RoleBuyer, model.RoleSeller)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, name, email, string(hash), role)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	return publicIdentity(user), nil
}

// Authenticate verifies an email/password pair and returns the matching user.
// bcrypt.CompareHashAndPassword performs a constant-time salted comparison, so
// credential checks never reduce to raw string equality.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, fmt.Errorf("service: %w - email and password are required", auctionerrors.ErrValidation)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to authenticate %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, fmt.Errorf("service: failed to authenticate %s: %w", email, auctionerrors.ErrInvalidCredential)
	}

	return publicIdentity(user), nil
}

// GetByID returns the public identity fields for a user
func (s *IdentityService) GetByID(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, fmt.Errorf("service: %w - invalid user id", auctionerrors.ErrValidation)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}

	return publicIdentity(user), nil
}

// publicIdentity strips the credential hash before a user leaves the service
func publicIdentity(user model.User) model.User {
	user.PasswordHash = ""
	return user
}
