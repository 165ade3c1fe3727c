package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accounthandlers "github.com/ad-tools/ad-pulse/pkg/handlers/account"
	scoringhandlers "github.com/ad-tools/ad-pulse/pkg/handlers/scoring"
	adpulsemiddleware "github.com/ad-tools/ad-pulse/pkg/server/middleware"
	accountsvc "github.com/ad-tools/ad-pulse/pkg/services/account"
	"github.com/ad-tools/ad-pulse/pkg/services/creative"
	"github.com/ad-tools/ad-pulse/pkg/services/health"
	"github.com/ad-tools/ad-pulse/pkg/services/recommend"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Accounts  accountsvc.Explorer
	Health    health.Service
	Creatives creative.Service
	Recommend *recommend.Service
	Catalog   *scoring.Catalog
	Fatigue   *scoring.FatigueCalculator
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	deps := config.Dependencies
	accHandler := accounthandlers.NewHandler(deps.Accounts, deps.Health, deps.Creatives, deps.Recommend)
	scoreHandler := scoringhandlers.NewHandler(deps.Catalog, deps.Fatigue)

	router := chi.NewRouter()

	router.Use(adpulsemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/accounts", accHandler.ListAccounts)
		r.Get("/accounts/{account}/audit", accHandler.RunAudit)
		r.Get("/accounts/{account}/audit/history", accHandler.AuditHistory)
		r.Get("/accounts/{account}/creatives", accHandler.ListCreatives)
		r.Get("/accounts/{account}/recommendations", accHandler.ListRecommendations)

		r.Post("/scoring/fatigue", scoreHandler.ScoreFatigue)
		r.Post("/scoring/audit", scoreHandler.ScoreAudit)
		r.Post("/scoring/priority", scoreHandler.ScorePriority)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the configured mux, mainly for httptest.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
