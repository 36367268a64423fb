// file: internals/features/users/auth/model/web_user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebUserModel is a back-office account (root, manager or teacher).
type WebUserModel struct {
	WebUserID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:web_user_id" json:"web_user_id"`
	WebUserEmail        string     `gorm:"type:varchar(255);not null;column:web_user_email;uniqueIndex:uq_web_users_email,where:web_user_deleted_at IS NULL" json:"web_user_email"`
	WebUserPasswordHash string     `gorm:"type:text;not null;column:web_user_password_hash" json:"-"`
	WebUserFullName     string     `gorm:"type:varchar(150);not null;column:web_user_full_name" json:"web_user_full_name"`
	WebUserRole         string     `gorm:"type:varchar(20);not null;column:web_user_role;check:web_user_role IN ('root','manager','teacher')" json:"web_user_role"`
	WebUserIsActive     bool       `gorm:"not null;default:true;column:web_user_is_active" json:"web_user_is_active"`
	WebUserLastLoginAt  *time.Time `gorm:"column:web_user_last_login_at" json:"web_user_last_login_at,omitempty"`

	WebUserCreatedAt time.Time      `gorm:"column:web_user_created_at;autoCreateTime" json:"web_user_created_at"`
	WebUserUpdatedAt time.Time      `gorm:"column:web_user_updated_at;autoUpdateTime" json:"web_user_updated_at"`
	WebUserDeletedAt gorm.DeletedAt `gorm:"column:web_user_deleted_at;index" json:"web_user_deleted_at,omitempty"`
}

func (WebUserModel) TableName() string { return "web_users" }

func (m WebUserModel) IsDeleted() bool { return m.WebUserDeletedAt.Valid }
