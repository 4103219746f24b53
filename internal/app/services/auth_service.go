package services

import (
	"context"
	"errors"

	appauth "github.com/kerem/campusdesk/internal/app/auth"
	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	pkgauth "github.com/kerem/campusdesk/internal/pkg/auth"
	"github.com/kerem/campusdesk/internal/pkg/logger"
	"github.com/kerem/campusdesk/internal/pkg/validation"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 6

// UserStore abstracts user persistence for the services that need it
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteUser(ctx context.Context, id int64) error
}

// AuthService handles registration, login and account management
type AuthService struct {
	users UserStore
	authz *appauth.Service
	jwt   *pkgauth.JWTService
}

// NewAuthService creates a new AuthService instance
func NewAuthService(users UserStore, authz *appauth.Service, jwt *pkgauth.JWTService) *AuthService {
	return &AuthService{
		users: users,
		authz: authz,
		jwt:   jwt,
	}
}

func validatePassword(password string) error {
	if len(password) < PasswordMinLength {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// Register creates an account and returns a token for the new user.
// The role defaults to student when omitted.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := models.RoleType(req.Role)
	if req.Role == "" {
		role = models.RoleStudent
	}

	errs := validation.Errors{}
	errs.Check("email", validation.Email(req.Email))
	errs.Check("password", validatePassword(req.Password))
	if !role.IsValid() {
		errs.Check("role", errors.New("role must be student or admin"))
	}
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a token. Unknown emails and wrong
// passwords produce the same error after the same amount of work.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			pkgauth.BurnPasswordCheck(req.Password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.TokenResponse{
		UserID:      user.ID,
		Role:        string(user.Role),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// GetUser returns a user profile. Callers may read their own profile;
// reading another profile requires the admin role.
func (s *AuthService) GetUser(ctx context.Context, callerID, targetID int64) (*dto.UserResponse, error) {
	if err := s.authz.RequireSelfOrAdmin(ctx, callerID, targetID); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

// ListUsers returns all registered users
func (s *AuthService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

// UpdateUser applies a partial profile update. Fields left nil retain their
// stored values. Changing a role requires the admin role regardless of the
// target.
func (s *AuthService) UpdateUser(ctx context.Context, callerID, targetID int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := s.authz.RequireSelfOrAdmin(ctx, callerID, targetID); err != nil {
		return nil, err
	}
	if req.Role != nil {
		if err := s.authz.RequireRole(ctx, callerID, models.RoleAdmin); err != nil {
			return nil, err
		}
	}

	errs := validation.Errors{}
	if req.Email != nil {
		errs.Check("email", validation.Email(*req.Email))
	}
	if req.Password != nil {
		errs.Check("password", validatePassword(*req.Password))
	}
	if req.Role != nil && !models.RoleType(*req.Role).IsValid() {
		errs.Check("role", errors.New("role must be student or admin"))
	}
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := pkgauth.HashPassword(*req.Password)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash password")
			return nil, err
		}
		updates["password"] = hashed
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if err := s.users.UpdateUser(ctx, targetID, updates); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteUser removes an account. Timetable entries owned by the account are
// intentionally left in place.
func (s *AuthService) DeleteUser(ctx context.Context, callerID, targetID int64) error {
	if err := s.authz.RequireSelfOrAdmin(ctx, callerID, targetID); err != nil {
		return err
	}
	return s.users.DeleteUser(ctx, targetID)
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	}
}
