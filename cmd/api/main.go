package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/gccoffee/member-api/internal/config"
	"github.com/gccoffee/member-api/internal/database"
	"github.com/gccoffee/member-api/internal/handler"
	"github.com/gccoffee/member-api/internal/logger"
	middlewarepkg "github.com/gccoffee/member-api/internal/middleware"
	"github.com/gccoffee/member-api/internal/repository"
	"github.com/gccoffee/member-api/internal/router"
	"github.com/gccoffee/member-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "", os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	adminCodes, err := service.NewAdminCodeVerifier(cfg.AdminCode, cfg.AdminCodeHash)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare admin code verifier")
	}
	if !adminCodes.Enabled() {
		log.Warn().Msg("no admin code configured, administrator registration is disabled")
	}

	membersRepo := repository.NewPGXMembersRepository(pool)
	membersService := service.NewMemberService(membersRepo, adminCodes, service.NewProfileNormalizer(cfg.DefaultPhoneRegion))
	membersHandler := handler.NewMemberHandler(membersService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.NewErrorHandler(log)

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{Members: membersHandler})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("member api listening")
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
