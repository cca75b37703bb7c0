package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ssrfind/internal/output"
	"ssrfind/internal/pipeline"
	"ssrfind/internal/ssr"
	"ssrfind/internal/store"
	"ssrfind/pkg/api"
)

// Repository is the part of *store.Store the handlers use.
type Repository interface {
	Save(ctx context.Context, a api.AnalysisV1) error
	Get(ctx context.Context, runID string) (api.AnalysisV1, error)
	List(ctx context.Context, limit int) ([]api.AnalysisSummaryV1, error)
	Delete(ctx context.Context, runID string) error
}

type AnalysisHandler struct {
	repo     Repository // nil: saving and history are unavailable
	defaults ssr.Constraints
	maxBody  int64
	log      *slog.Logger
	now      func() time.Time
}

// Create handles POST /analyses
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	// constraint fields the client leaves out keep the server defaults
	defaults := output.ToAPIConstraints(h.defaults)
	req := api.AnalyzeRequestV1{Constraints: &defaults}
	if err := ParseJSONBody(r, &req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			ErrorResponse(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", tooBig.Limit))
			return
		}
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Save && h.repo == nil {
		ErrorResponse(w, http.StatusServiceUnavailable, "no store configured")
		return
	}

	c := h.defaults
	if req.Constraints != nil {
		c = output.FromAPIConstraints(*req.Constraints)
	}
	res, err := pipeline.Analyze(r.Context(), req.Sequence, c, pipeline.Options{})
	if errors.Is(err, ssr.ErrConstraint) {
		ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.log.Warn("analysis aborted", "error", err)
		ErrorResponse(w, http.StatusServiceUnavailable, "analysis aborted")
		return
	}

	a := output.ToAPIAnalysis(res.Analysis())
	status := http.StatusOK
	if req.Save {
		store.Stamp(&a, h.now())
		if err := h.repo.Save(r.Context(), a); err != nil {
			h.log.Error("failed to save analysis", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
			return
		}
		status = http.StatusCreated
		h.log.Info("analysis saved", "run_id", a.RunID, "findings", a.Statistics.TotalFindings)
	}
	JSONResponse(w, status, a)
}

// List handles GET /analyses
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		ErrorResponse(w, http.StatusServiceUnavailable, "no store configured")
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	list, err := h.repo.List(r.Context(), limit)
	if err != nil {
		h.log.Error("failed to list analyses", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	JSONResponse(w, http.StatusOK, list)
}

// load fetches {id}, writing the error response itself when ok is false.
func (h *AnalysisHandler) load(w http.ResponseWriter, r *http.Request) (api.AnalysisV1, bool) {
	if h.repo == nil {
		ErrorResponse(w, http.StatusServiceUnavailable, "no store configured")
		return api.AnalysisV1{}, false
	}
	id := r.PathValue("id")
	a, err := h.repo.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		ErrorResponse(w, http.StatusNotFound, "Analysis not found")
		return api.AnalysisV1{}, false
	}
	if err != nil {
		h.log.Error("failed to load analysis", "run_id", id, "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return api.AnalysisV1{}, false
	}
	return a, true
}

// Get handles GET /analyses/{id}
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	if a, ok := h.load(w, r); ok {
		JSONResponse(w, http.StatusOK, a)
	}
}

// FindingsCSV handles GET /analyses/{id}/findings.csv
func (h *AnalysisHandler) FindingsCSV(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ssr-"+a.RunID+".csv"))
	if err := output.WriteCSV(w, output.FromAPIAnalysis(a).Findings, true); err != nil {
		h.log.Warn("csv export interrupted", "run_id", a.RunID, "error", err)
	}
}

// Delete handles DELETE /analyses/{id}
func (h *AnalysisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		ErrorResponse(w, http.StatusServiceUnavailable, "no store configured")
		return
	}
	id := r.PathValue("id")
	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		ErrorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		h.log.Error("failed to delete analysis", "run_id", id, "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
