// Package server exposes the claims pipeline, the stored claims, and the
// scheme-eligibility engine over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fra-atlas/claims-tracker/internal/export"
	"github.com/fra-atlas/claims-tracker/internal/metrics"
	"github.com/fra-atlas/claims-tracker/internal/pipeline"
	"github.com/fra-atlas/claims-tracker/internal/repository"
	"github.com/fra-atlas/claims-tracker/internal/schemes"
)

type Service struct {
	pipeline *pipeline.Pipeline
	repo     repository.ClaimRepository
	engine   *schemes.Engine
	exporter *export.Service
	health   func(r *http.Request) error
	logger   *zap.Logger
}

func NewService(p *pipeline.Pipeline, repo repository.ClaimRepository, engine *schemes.Engine, exporter *export.Service, health func(r *http.Request) error, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		pipeline: p,
		repo:     repo,
		engine:   engine,
		exporter: exporter,
		health:   health,
		logger:   logger,
	}
}

// Router builds the HTTP routing table.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/documents", s.handleIngestDocument)
		r.Get("/claims/{category}", s.handleListClaims)
		r.Get("/claims/{category}/{claimID}", s.handleGetClaim)
		r.Get("/claims/{category}/{claimID}/recommendation", s.handleClaimRecommendation)
		r.Get("/recommendations", s.handleRecommendations)
		r.Get("/analytics", s.handleAnalytics)
		r.Get("/export", s.handleExport)
	})

	return r
}

func (s *Service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r); err != nil {
			s.logger.Warn("health check failed", zap.Error(err))
			s.respondError(w, http.StatusServiceUnavailable, "unhealthy", err.Error())
			return
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, apiError{Error: code, Message: message})
}
