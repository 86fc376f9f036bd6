package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"devmarket/internal/config"
	"devmarket/internal/database"
	"devmarket/internal/handlers"
	"devmarket/internal/services"
)

func main() {
	cfg := config.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	gin.SetMode(gin.ReleaseMode)

	// Pick the store: Postgres when DATABASE_URL is set, otherwise the local
	// JSON file.
	var (
		db         handlers.Store
		closeStore func()
	)
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pg, err := database.NewPostgresStore(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			logger.Error("postgres store init failed", "err", err)
			os.Exit(1)
		}
		db = pg
		closeStore = pg.Close
		logger.Info("using postgres store")
	} else {
		jdb, err := database.NewJSONDatabase(cfg.DataFile)
		if err != nil {
			logger.Error("json store init failed", "file", cfg.DataFile, "err", err)
			os.Exit(1)
		}
		db = jdb
		closeStore = func() {}
		logger.Info("using json file store", "file", cfg.DataFile)
	}
	defer closeStore()

	passwordHash, err := adminPasswordHash(cfg.Admin)
	if err != nil {
		logger.Error("admin credentials misconfigured", "err", err)
		os.Exit(1)
	}

	auth := services.NewAuthService(cfg.Admin.Email, passwordHash, logger)
	email := services.NewEmailService(cfg.SMTP, logger)

	h := handlers.NewHandler(db, auth, email, logger)
	r := handlers.Routes(h, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Warn("received signal, shutting down", "signal", sig.String())
	case err := <-errCh:
		logger.Error("http server failed", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("server stopped")
}

// adminPasswordHash resolves the admin credential from config: an explicit
// bcrypt hash wins, a plain password is hashed at startup for local use.
func adminPasswordHash(admin config.AdminConfig) (string, error) {
	if admin.PasswordHash != "" {
		return admin.PasswordHash, nil
	}
	if admin.Password != "" {
		return services.HashPassword(admin.Password)
	}
	return "", errors.New("set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
