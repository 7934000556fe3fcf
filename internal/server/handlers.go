// internal/server/handlers.go
package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/validation"
	"fitplan-engine/internal/engine/orchestrator"
	"fitplan-engine/internal/plan"
)

func (s *Server) handleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, plan.FlavorWorkout, workoutRequestSchema)
}

func (s *Server) handleGenerateMeal(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, plan.FlavorMeal, mealRequestSchema)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, flavor plan.PlanFlavor, schema validation.JSONSchema) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, errors.NewInvalidInputError([]string{"unreadable request body"}))
		return
	}

	// Validate against the raw document first so every field violation
	// is reported in one pass.
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		s.writeError(w, errors.NewInvalidInputError([]string{"request body is not valid JSON"}))
		return
	}
	if result := validation.ValidateInput(raw, schema); !result.Valid {
		s.writeError(w, errors.NewInvalidInputError(result.GetErrorMessages()))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		s.writeError(w, errors.NewInvalidInputError([]string{"request body does not match the expected shape"}))
		return
	}
	if flavor == plan.FlavorWorkout && req.DaysPerWeek == 0 {
		req.DaysPerWeek = 3
	}

	started := time.Now()
	result, err := s.generator.Generate(r.Context(), orchestrator.Request{
		Profile:     req.Profile(),
		Flavor:      flavor,
		DaysPerWeek: req.DaysPerWeek,
		MealsPerDay: req.MealsPerDay,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if s.obs != nil {
		s.obs.RecordPlanGenerated(r.Context(), string(flavor), string(result.Source))
		s.obs.RecordGenerationDuration(r.Context(), time.Since(started), string(flavor), string(result.Source))
	}

	resp := GenerateResponse{
		Plan:           result.Plan,
		DerivedMetrics: result.Metrics,
		Source:         result.Source,
		Attempts:       result.Attempts,
	}

	// Persistence is best effort: the generated plan is always
	// returned, with or without an id.
	if req.OwnerID != "" {
		if stored, saveErr := s.plans.Save(r.Context(), req.OwnerID, result.Plan); saveErr != nil {
			s.log.Error("plan save failed", map[string]interface{}{
				"ownerId": req.OwnerID,
				"flavor":  string(flavor),
				"error":   saveErr.Error(),
			})
		} else {
			resp.PlanID = stored.ID
			if cacheErr := s.cache.SetLatest(r.Context(), req.OwnerID, stored); cacheErr != nil {
				s.log.Warn("latest-plan cache update failed", map[string]interface{}{
					"ownerId": req.OwnerID,
					"error":   cacheErr.Error(),
				})
			}
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	stored, err := s.plans.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleLatestPlan(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	flavor := plan.PlanFlavor(r.URL.Query().Get("flavor"))
	if ownerID == "" || (flavor != plan.FlavorWorkout && flavor != plan.FlavorMeal) {
		s.writeError(w, errors.NewInvalidInputError([]string{"ownerId and flavor (workout|meal) query parameters are required"}))
		return
	}

	if cached, err := s.cache.GetLatest(r.Context(), ownerID, flavor); err == nil && cached != nil {
		s.writeJSON(w, http.StatusOK, cached)
		return
	}

	stored, err := s.plans.Latest(r.Context(), ownerID, flavor)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if cacheErr := s.cache.SetLatest(r.Context(), ownerID, stored); cacheErr != nil {
		s.log.Warn("latest-plan cache fill failed", map[string]interface{}{
			"ownerId": ownerID,
			"error":   cacheErr.Error(),
		})
	}
	s.writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "postgres": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := s.postgres.Ping(r.Context()); err != nil {
		status["status"], status["postgres"] = "degraded", err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := s.redis.Ping(r.Context()); err != nil {
		status["status"], status["redis"] = "degraded", err.Error()
		code = http.StatusServiceUnavailable
	}

	s.writeJSON(w, code, status)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("response encode failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Code: string(errors.CodeOf(err)), Message: err.Error()}

	var stdErr *errors.StandardError
	if stderrors.As(err, &stdErr) {
		resp.Code = string(stdErr.Code)
		resp.Message = stdErr.Message
		if reasons, ok := stdErr.Metadata["violations"].([]string); ok {
			resp.Errors = reasons
		} else if stdErr.Details != "" {
			resp.Errors = []string{stdErr.Details}
		}
	}

	s.writeJSON(w, errors.ToHTTPStatus(err), resp)
}
