// Command server runs the appointment booking backend for the law practice:
// it loads configuration, opens the SQLite archive, re-seeds the in-memory
// booking and contact engines from it, wires the HTTP API, and serves until
// interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jverhoeven/go-booking-backend/internal/booking"
	"github.com/jverhoeven/go-booking-backend/internal/config"
	"github.com/jverhoeven/go-booking-backend/internal/contact"
	httpapi "github.com/jverhoeven/go-booking-backend/internal/http"
	"github.com/jverhoeven/go-booking-backend/internal/observability"
	"github.com/jverhoeven/go-booking-backend/internal/repo"
	"github.com/jverhoeven/go-booking-backend/internal/sysutil"

	_ "github.com/jverhoeven/go-booking-backend/docs"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title           Booking Backend API
// @version         1.0
// @description     Appointment scheduling and contact-form API for a legal practice.
// @BasePath        /api/v1
//
// @contact.name    Backend team
// @license.name    MIT
func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// Logging: level first, pretty console output only when asked for.
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing (no-op unless OTEL_ENABLED).
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Archive: open, migrate, and re-seed the engines from the last mirror.
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open archive failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("archive migration failed")
	}

	apptSvc := booking.NewService()
	contactSvc := contact.NewService()

	if records, err := repo.ListAppointments(ctx, db); err != nil {
		log.Warn().Err(err).Msg("appointment restore skipped")
	} else {
		apptSvc.Restore(records)
		log.Info().Int("count", len(records)).Msg("appointments restored from archive")
	}
	if records, err := repo.ListContacts(ctx, db); err != nil {
		log.Warn().Err(err).Msg("contact restore skipped")
	} else {
		contactSvc.Restore(records)
		log.Info().Int("count", len(records)).Msg("contacts restored from archive")
	}

	// HTTP transport.
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, apptSvc, contactSvc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Str("base_path", cfg.APIBasePath).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("bye")
}
