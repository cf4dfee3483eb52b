package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/config"
	"github.com/oksasatya/food-cooking-server/internal/container"
	"github.com/oksasatya/food-cooking-server/internal/infrastructure/mongodb"
	"github.com/oksasatya/food-cooking-server/internal/router"
	"github.com/oksasatya/food-cooking-server/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred cleanup also happens on
// startup failures.
func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx := context.Background()

	// MongoDB: one pooled client for the process
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	client, err := mongodb.NewClient(connectCtx, cfg.MongoConnectionURI(), cfg.MongoMaxPoolSize, cfg.MongoConnectTimeout)
	cancelConnect()
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			helpers.LogError(logger, "mongodb disconnect failed", err, nil)
		}
	}()
	logger.Info("pinged your deployment, connected to mongodb")

	if cfg.RunMigrations {
		if err := mongodb.RunMigrations(client, cfg.MongoDB, cfg.MigrationsDir, logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	// Redis (optional; rate limiting is disabled without it)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			helpers.LogWarn(logger, "redis unreachable, rate limiting fails open", logrus.Fields{"error": err.Error()})
		}
	} else {
		logger.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(client)
	container.SetCollections(mongodb.NewCollections(client, cfg.MongoDB, cfg.MongoReviewsDB))
	container.SetRedis(rdb)
	container.SetJWT(helpers.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenTTL))

	r := router.NewEngine(router.DepsFromContainer())

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("food server is sitting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server exited properly")
	return nil
}
