// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	"steam_backend/internals/features/users/auth/repository"
	"steam_backend/internals/helpers/dbtime"
)

const invalidCredentials = "invalid email or password"

type AuthService struct {
	Users     repository.UserStore
	Blacklist TokenBlacklist
	Secret    string
	TTL       time.Duration
	Clock     dbtime.Clock
}

func NewAuthService(users repository.UserStore, bl TokenBlacklist) *AuthService {
	return &AuthService{
		Users:     users,
		Blacklist: bl,
		Secret:    configs.JWTSecret,
		TTL:       configs.JWTTTL,
		Clock:     dbtime.SystemClock{},
	}
}

type LoginResult struct {
	AccessToken string                  `json:"access_token"`
	TokenType   string                  `json:"token_type"`
	ExpiresAt   time.Time               `json:"expires_at"`
	User        *authModel.WebUserModel `json:"user"`
}

// Login checks credentials and issues an access token. Unknown email and wrong
// password answer the same 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Users.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		_ = CheckPasswordHash(dummyHash, password)
		return nil, fiber.NewError(fiber.StatusUnauthorized, invalidCredentials)
	}
	if err := CheckPasswordHash(user.WebUserPasswordHash, password); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, invalidCredentials)
	}
	if !user.WebUserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "account is disabled")
	}
	if !constants.IsWebRole(user.WebUserRole) {
		return nil, fiber.NewError(fiber.StatusForbidden, "account has no back-office role")
	}

	now := s.Clock.Now()
	token, claims, err := IssueToken(s.Secret, user.WebUserID, user.WebUserRole, s.TTL, now)
	if err != nil {
		return nil, err
	}
	if err := s.Users.TouchLastLogin(ctx, user.WebUserID, now); err != nil {
		configs.Log.Warn("login: last_login_at not updated", zap.String("user_id", user.WebUserID.String()), zap.Error(err))
	}

	configs.Log.Info("web user logged in", zap.String("user_id", user.WebUserID.String()), zap.String("role", user.WebUserRole))
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        user,
	}, nil
}

// Logout revokes the token until its own expiry.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}
	return s.Blacklist.Revoke(ctx, claims.ID, claims.Remaining(s.Clock.Now()))
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*authModel.WebUserModel, error) {
	user, err := s.Users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}
