package main

import (
	"RestAPIFurb/internal/auth"
	"RestAPIFurb/internal/config"
	"RestAPIFurb/internal/handlers"
	"RestAPIFurb/internal/metrics"
	"RestAPIFurb/internal/middleware"
	"RestAPIFurb/internal/repo"
	"RestAPIFurb/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap: development при DEBUG
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	//context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(repo.DBOptions{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
		DSN:    cfg.DatabaseDSN,
		Debug:  cfg.Debug,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize database", "driver", cfg.DBDriver, "error", err)
	}
	defer func() {
		if err := repo.CloseDB(gormDB); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(repo.NewUserRepository(gormDB), tokens, sugar)
	comandaService := service.NewComandaService(repo.NewComandaRepository(gormDB), sugar)

	h := handlers.NewHandler(userService, comandaService, metrics.New(), sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", srv.Addr,
		"base_path", cfg.BasePath,
		"db_driver", cfg.DBDriver,
		"token_ttl", cfg.TokenTTL,
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			sugar.Errorw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
		}
	}
}
