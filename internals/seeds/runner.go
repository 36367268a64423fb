package seeds

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	users "steam_backend/internals/seeds/users/auth"
)

// RunAllSeeds is idempotent; existing rows are left alone.
func RunAllSeeds(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users.SeedRootFromEnv(ctx, db)

	if path := configs.GetEnv("SEED_USERS_FILE"); path != "" {
		if err := users.SeedUsersFromJSON(ctx, db, path); err != nil {
			configs.Log.Error("seed: users file failed", zap.Error(err))
		}
	}
}
