package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sumire/commerce/internal/config"
	"github.com/sumire/commerce/internal/handler"
	"github.com/sumire/commerce/internal/provider"
	"github.com/sumire/commerce/internal/repository"
	"github.com/sumire/commerce/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := repository.InitSchema(ctx, db); err != nil {
		return err
	}

	slog.Info("database ready", "driver", db.DriverName())

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	messageProvider, err := provider.New(provider.Config{
		Channel:     cfg.MessageProvider,
		SenderEmail: cfg.SenderEmail,
		SenderPhone: cfg.SenderPhone,
	})
	if err != nil {
		return err
	}

	slog.Info("message provider configured", "provider", messageProvider.Name())

	userSvc := service.NewUserService(userRepo)
	orderSvc := service.NewOrderService(orderRepo, userRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, messageProvider)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Validator = handler.NewAppValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(handler.RequestLogger())

	handler.RegisterRoutes(e,
		handler.NewUserHandler(userSvc),
		handler.NewOrderHandler(orderSvc, userSvc),
		handler.NewNotificationHandler(notificationSvc),
		handler.NewAdminHandler(userSvc, orderSvc),
	)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		errCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
