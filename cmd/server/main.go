package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository/postgres"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/app"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/gateway"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/template"
	"github.com/Navaneethan2112/SiteRevamp/internal/platform/config"
	"github.com/Navaneethan2112/SiteRevamp/internal/platform/database"
	"github.com/Navaneethan2112/SiteRevamp/internal/platform/logger"
	"github.com/Navaneethan2112/SiteRevamp/internal/server/middleware"
	httptransport "github.com/Navaneethan2112/SiteRevamp/internal/server/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "server"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		slog.Error("Failed to load configuration", "service", serviceName, "error", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.LogLevel)
	appLogger.Info("AaraConnect server starting...", "port", cfg.ServerPort)

	dbPool, err := database.NewDBPool(context.Background(), cfg.PostgresDSN)
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	appLogger.Info("Connected to PostgreSQL database")

	// Repositories.
	userRepo := postgres.NewPgUserRepository(dbPool, appLogger)
	contactRepo := postgres.NewPgContactRepository(dbPool, appLogger)
	campaignRepo := postgres.NewPgCampaignRepository(dbPool, appLogger)
	templateRepo := postgres.NewPgTemplateRepository(dbPool, appLogger)
	statsRepo := postgres.NewPgStatsRepository(dbPool, appLogger)

	// Messaging core. Every tenant send constructs its own gateway client
	// through the factory from that tenant's stored credentials.
	registry := template.NewRegistry()
	clientFactory := gateway.NewTwilioClientFactory(appLogger, cfg.TwilioAPIBaseURL, nil)
	pacer := app.NewFixedIntervalPacer(time.Duration(cfg.BulkSendIntervalMS) * time.Millisecond)
	messenger := app.NewMessenger(registry, clientFactory, pacer, appLogger)

	validate := validator.New()

	messageHandler := httptransport.NewMessageHandler(messenger, userRepo, appLogger, validate)
	webhookHandler := httptransport.NewWebhookHandler(messenger, appLogger)
	credentialsHandler := httptransport.NewCredentialsHandler(messenger, userRepo, appLogger, validate)
	dashboardHandler := httptransport.NewDashboardHandler(userRepo, contactRepo, campaignRepo, templateRepo, statsRepo, appLogger, validate)

	authMW := middleware.Auth(cfg.JWTSecret, userRepo, appLogger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(120 * time.Second))
	r.Use(httptransport.PrometheusMetrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		// Public: contact form, account bootstrap, provider callbacks.
		dashboardHandler.RegisterPublicRoutes(api)
		webhookHandler.RegisterRoutes(api)

		// Tenant-scoped routes.
		api.Group(func(protected chi.Router) {
			protected.Use(authMW)
			messageHandler.RegisterRoutes(protected)
			credentialsHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterProtectedRoutes(protected)
		})
	})

	httpServer := &http.Server{Addr: fmt.Sprintf(":%d", cfg.ServerPort), Handler: r}
	appLogger.Info(fmt.Sprintf("HTTP server listening on port %d", cfg.ServerPort))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to serve", "error", err)
		}
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	<-quitChan
	appLogger.Info("Shutdown signal received, shutting down HTTP server...")
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
	} else {
		appLogger.Info("HTTP server shut down gracefully.")
	}
}
