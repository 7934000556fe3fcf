// internal/server/server.go

// Package server exposes the generation pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/common/observability"
	"fitplan-engine/internal/engine/orchestrator"
	"fitplan-engine/internal/plan"
	"fitplan-engine/internal/store"
)

// Generator is the orchestrator surface the handlers need.
type Generator interface {
	Generate(ctx context.Context, req orchestrator.Request) (*plan.GenerationResult, error)
}

// PlanStore is the persistence surface the handlers need.
type PlanStore interface {
	Save(ctx context.Context, ownerID string, p *plan.GeneratedPlan) (*store.StoredPlan, error)
	Get(ctx context.Context, id string) (*store.StoredPlan, error)
	Latest(ctx context.Context, ownerID string, flavor plan.PlanFlavor) (*store.StoredPlan, error)
}

type PlanCache interface {
	SetLatest(ctx context.Context, ownerID string, stored *store.StoredPlan) error
	GetLatest(ctx context.Context, ownerID string, flavor plan.PlanFlavor) (*store.StoredPlan, error)
}

// Pinger covers the dependency health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	cfg       config.ServerConfig
	generator Generator
	plans     PlanStore
	cache     PlanCache
	postgres  Pinger
	redis     Pinger
	obs       *observability.Observability
	log       logger.Logger
	http      *http.Server
}

func New(cfg config.ServerConfig, generator Generator, plans PlanStore, cache PlanCache, postgres, redis Pinger, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		generator: generator,
		plans:     plans,
		cache:     cache,
		postgres:  postgres,
		redis:     redis,
		obs:       obs,
		log:       log.WithFields(map[string]interface{}{"component": "server"}),
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/plans/workout", s.handleGenerateWorkout).Methods(http.MethodPost)
	router.HandleFunc("/api/plans/meal", s.handleGenerateMeal).Methods(http.MethodPost)
	router.HandleFunc("/api/plans/latest", s.handleLatestPlan).Methods(http.MethodGet)
	router.HandleFunc("/api/plans/{id}", s.handleGetPlan).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})

	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      c.Handler(s.loggingMiddleware(router)),
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
	}
	return s
}

// Router exposes the handler stack for tests.
func (s *Server) Router() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.log.Info("http server listening", map[string]interface{}{"address": s.cfg.Address})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		s.log.Info("request handled", map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}
