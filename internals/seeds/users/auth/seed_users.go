package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	"steam_backend/internals/features/users/auth/repository"
	authService "steam_backend/internals/features/users/auth/service"
)

type UserSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// SeedUser creates the account unless the email already exists. created is false when skipped.
func SeedUser(ctx context.Context, store *repository.GormUserStore, data UserSeed) (created bool, err error) {
	if !constants.IsWebRole(data.Role) {
		return false, fmt.Errorf("seed %s: unknown role %q", data.Email, data.Role)
	}
	if len(data.Password) < 6 {
		return false, fmt.Errorf("seed %s: password too short", data.Email)
	}
	if _, err := store.FindUserByEmail(ctx, data.Email); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := authService.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	if data.FullName == "" {
		data.FullName = data.Email
	}
	user := &authModel.WebUserModel{
		WebUserEmail:        data.Email,
		WebUserPasswordHash: hash,
		WebUserFullName:     data.FullName,
		WebUserRole:         data.Role,
		WebUserIsActive:     true,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

// SeedRootFromEnv seeds SEED_ROOT_EMAIL / SEED_ROOT_PASSWORD as root.
func SeedRootFromEnv(ctx context.Context, db *gorm.DB) {
	email := configs.GetEnv("SEED_ROOT_EMAIL")
	password := configs.GetEnv("SEED_ROOT_PASSWORD")
	if email == "" || password == "" {
		configs.Log.Info("seed: SEED_ROOT_EMAIL/SEED_ROOT_PASSWORD not set, root user skipped")
		return
	}
	created, err := SeedUser(ctx, repository.NewGormUserStore(db), UserSeed{
		Email: email, Password: password, FullName: "Root", Role: constants.RoleRoot,
	})
	switch {
	case err != nil:
		configs.Log.Error("seed: root user failed", zap.Error(err))
	case created:
		configs.Log.Info("seed: root user created", zap.String("email", email))
	default:
		configs.Log.Info("seed: root user already exists", zap.String("email", email))
	}
}

// SeedUsersFromJSON seeds every entry of a JSON array of UserSeed.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	store := repository.NewGormUserStore(db)
	for _, data := range inputs {
		created, err := SeedUser(ctx, store, data)
		if err != nil {
			configs.Log.Warn("seed: user skipped", zap.String("email", data.Email), zap.Error(err))
			continue
		}
		if created {
			configs.Log.Info("seed: user created", zap.String("email", data.Email), zap.String("role", data.Role))
		}
	}
	return nil
}
