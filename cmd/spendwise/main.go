// @title Spendwise Backend API
// @version 1.0
// @description Personal finance tracking: expenses, budgets, analytics and AI coaching.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "spendwise-backend/docs" // This is required for swagger
	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/categorizer"
	"spendwise-backend/internal/config"
	"spendwise-backend/internal/database"
	"spendwise-backend/internal/handlers"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/routes"
	"spendwise-backend/internal/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String(log.FieldError, err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.New(log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := ai.FromConfig(ctx, cfg.AI, logger)
	if err != nil {
		return err
	}
	if cfg.IsAIConfigured() && cfg.AI.ProbeOnStartup {
		go ai.Probe(ctx, gen, cfg.AI.Timeout, logger)
	}

	// --- Services ---
	authService := services.NewAuthService(st, logger)
	expenseService := services.NewExpenseService(st, categorizer.New(gen, cfg.AI.Timeout, logger), logger)
	budgetService := services.NewBudgetService(st)
	analyticsService := services.NewAnalyticsService(st, st, gen, logger,
		services.WithLocation(cfg.Location()),
		services.WithAITimeout(cfg.AI.Timeout))

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, &cfg.JWT),
		Expenses:  handlers.NewExpenseHandler(expenseService),
		Budgets:   handlers.NewBudgetHandler(budgetService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Health:    handlers.NewHealthHandler(st),
	}, &cfg.JWT)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(log.Middleware(logger)(mux)),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening",
			slog.String("addr", srv.Addr),
			slog.String("db_driver", cfg.Database.Driver),
			slog.Bool("ai_configured", cfg.IsAIConfigured()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
