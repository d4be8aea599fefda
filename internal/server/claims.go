package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fra-atlas/claims-tracker/constants"
	"github.com/fra-atlas/claims-tracker/internal/common"
	"github.com/fra-atlas/claims-tracker/internal/entity"
	"github.com/fra-atlas/claims-tracker/internal/schemes"
)

func categoryParam(r *http.Request) (constants.FormCategory, bool) {
	return constants.ParseCategory(chi.URLParam(r, "category"))
}

func (s *Service) handleListClaims(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "bad_category",
			"category must be one of: individual, village, forest")
		return
	}

	var (
		claims any
		err    error
	)
	switch category {
	case constants.CategoryIndividual:
		claims, err = s.repo.ListIndividual(r.Context())
	case constants.CategoryVillage:
		claims, err = s.repo.ListVillage(r.Context())
	case constants.CategoryForest:
		claims, err = s.repo.ListForest(r.Context())
	}
	if err != nil {
		s.logger.Warn("list claims failed", zap.String("category", string(category)), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "failed to list claims")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"claims": claims})
}

func (s *Service) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "bad_category",
			"category must be one of: individual, village, forest")
		return
	}
	claimID := chi.URLParam(r, "claimID")

	var (
		claim any
		err   error
	)
	switch category {
	case constants.CategoryIndividual:
		claim, err = s.repo.GetIndividual(r.Context(), claimID)
	case constants.CategoryVillage:
		claim, err = s.repo.GetVillage(r.Context(), claimID)
	case constants.CategoryForest:
		claim, err = s.repo.GetForest(r.Context(), claimID)
	}
	if errors.Is(err, common.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "not_found", "no such claim")
		return
	}
	if err != nil {
		s.logger.Warn("get claim failed", zap.String("claim_id", claimID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "failed to load claim")
		return
	}
	s.respondJSON(w, http.StatusOK, claim)
}

func (s *Service) handleClaimRecommendation(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "bad_category",
			"category must be one of: individual, village, forest")
		return
	}
	claimID := chi.URLParam(r, "claimID")

	var (
		rec schemes.Recommendation
		err error
	)
	switch category {
	case constants.CategoryIndividual:
		var c *entity.IndividualClaim
		if c, err = s.repo.GetIndividual(r.Context(), claimID); err == nil {
			rec = s.engine.EvaluateIndividual(c)
		}
	case constants.CategoryVillage:
		var c *entity.VillageClaim
		if c, err = s.repo.GetVillage(r.Context(), claimID); err == nil {
			rec = s.engine.EvaluateVillage(c)
		}
	case constants.CategoryForest:
		var c *entity.ForestClaim
		if c, err = s.repo.GetForest(r.Context(), claimID); err == nil {
			rec = s.engine.EvaluateForest(c)
		}
	}
	if errors.Is(err, common.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "not_found", "no such claim")
		return
	}
	if err != nil {
		s.logger.Warn("recommendation failed", zap.String("claim_id", claimID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "failed to evaluate claim")
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Service) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	individuals, villages, forests, err := s.loadAllClaims(r.Context())
	if err != nil {
		s.logger.Warn("list recommendations failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "failed to evaluate claims")
		return
	}
	recs := s.engine.Recommendations(individuals, villages, forests)
	s.respondJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (s *Service) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	individuals, villages, forests, err := s.loadAllClaims(r.Context())
	if err != nil {
		s.logger.Warn("analytics failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal", "failed to compute analytics")
		return
	}
	s.respondJSON(w, http.StatusOK, s.engine.Analytics(individuals, villages, forests))
}

func (s *Service) loadAllClaims(ctx context.Context) ([]*entity.IndividualClaim, []*entity.VillageClaim, []*entity.ForestClaim, error) {
	individuals, err := s.repo.ListIndividual(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	villages, err := s.repo.ListVillage(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	forests, err := s.repo.ListForest(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return individuals, villages, forests, nil
}
