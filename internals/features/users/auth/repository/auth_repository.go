// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "steam_backend/internals/features/users/auth/model"
)

// UserStore is the account lookup auth needs. Misses return gorm.ErrRecordNotFound.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*authModel.WebUserModel, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*authModel.WebUserModel, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore { return &GormUserStore{DB: db} }

func NormalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (s *GormUserStore) FindUserByEmail(ctx context.Context, email string) (*authModel.WebUserModel, error) {
	var user authModel.WebUserModel
	if err := s.DB.WithContext(ctx).
		Where("LOWER(web_user_email) = ?", NormalizeEmail(email)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindUserByID(ctx context.Context, id uuid.UUID) (*authModel.WebUserModel, error) {
	var user authModel.WebUserModel
	if err := s.DB.WithContext(ctx).First(&user, "web_user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.DB.WithContext(ctx).
		Model(&authModel.WebUserModel{}).
		Where("web_user_id = ?", id).
		Update("web_user_last_login_at", at).Error
}

func (s *GormUserStore) CreateUser(ctx context.Context, user *authModel.WebUserModel) error {
	user.WebUserEmail = NormalizeEmail(user.WebUserEmail)
	return s.DB.WithContext(ctx).Create(user).Error
}
