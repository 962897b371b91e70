// Package server wires configuration, storage, services and the HTTP
// surface together and runs the process.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/holiday"
	"ponto/internal/domain/roster"
	"ponto/internal/domain/sheetsync"
	"ponto/internal/domain/timesheet"
	"ponto/internal/platform/config"
	"ponto/internal/platform/db"
	"ponto/internal/platform/jobs"
	"ponto/internal/platform/metrics"
	"ponto/internal/platform/sheets"
	"ponto/internal/transport/http/api"
	authhandler "ponto/internal/transport/http/handlers/auth"
	holidayhandler "ponto/internal/transport/http/handlers/holiday"
	reportshandler "ponto/internal/transport/http/handlers/reports"
	rosterhandler "ponto/internal/transport/http/handlers/roster"
	synchandler "ponto/internal/transport/http/handlers/sync"
	timesheethandler "ponto/internal/transport/http/handlers/timesheet"
	"ponto/internal/transport/http/middleware"
)

func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			return err
		}
	}

	sheetsClient := sheets.New(cfg.SheetsAPIURL, cfg.SheetsTimeout)
	collector := metrics.New()

	rosterStore := roster.NewStore(pool)
	holidayStore := holiday.NewStore(pool)
	punchStore := timesheet.NewStore(pool)

	rosterService := roster.NewService(rosterStore, sheetsClient)
	holidayService := holiday.NewService(holidayStore, sheetsClient)
	timesheetService := timesheet.NewService(punchStore, rosterService, holidayService, sheetsClient)
	syncService := sheetsync.New(sheetsClient, rosterStore, holidayStore, punchStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	guard := middleware.RequireAdmin(cfg.AuthEnabled())

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(cfg.JWTSecret, cfg.AdminPasswordHash, cfg.TokenTTL).RegisterRoutes(r)
		rosterhandler.NewHandler(rosterService).RegisterRoutes(r, guard)
		holidayhandler.NewHandler(holidayService).RegisterRoutes(r, guard)
		timesheethandler.NewHandler(timesheetService).RegisterRoutes(r, guard)
		reportshandler.NewHandler(timesheetService).RegisterRoutes(r)
		synchandler.NewHandler(syncService, collector).RegisterRoutes(r, guard)
	})

	if cfg.SyncInterval > 0 && syncService.Enabled() {
		refresher := jobs.New(cfg.SyncInterval, func(ctx context.Context) error {
			_, err := syncService.Pull(ctx)
			if err != nil {
				collector.RecordSyncFailure()
			}
			return err
		})
		refresher.Start(ctx)
	}

	log.Printf("ponto server listening on %s", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, router)
}
