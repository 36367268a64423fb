package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"steam_backend/internals/configs"
	database "steam_backend/internals/databases"
	helper "steam_backend/internals/helpers"
	middlewares "steam_backend/internals/middlewares"
	routes "steam_backend/internals/route"
	"steam_backend/internals/seeds"
)

func main() {
	if err := configs.InitLogger(); err != nil {
		panic(err)
	}
	defer configs.Log.Sync() //nolint:errcheck

	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.ErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// recover, request id + timeout, access log, cors, metrics, rate limit
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.AutoMigrate(); err != nil {
		configs.Log.Fatal("auto migrate failed", zap.Error(err))
	}

	if err := database.ConnectRedis(); err != nil {
		// revocation falls back to the in-process blacklist
		configs.Log.Warn("redis unavailable", zap.Error(err))
	}

	if configs.SeedOnStart {
		seeds.RunAllSeeds(database.DB)
	}

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		configs.Log.Info("✅ Listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			configs.Log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	configs.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if database.Redis != nil {
		_ = database.Redis.Close()
	}
}
