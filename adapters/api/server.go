package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stratasample/adapters/export"
	"stratasample/app"
	"stratasample/domain/core"
	"stratasample/domain/population"
	"stratasample/domain/sampling"
	"stratasample/internal"
	"stratasample/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes the sampling pipeline over HTTP
type Server struct {
	router *chi.Mux
	runs   *app.RunService
	reader ports.LedgerReaderPort
	log    *internal.Logger
}

// RunRequest is the JSON payload for executing a sampling run
type RunRequest struct {
	Entries    []population.RawEntry `json:"entries"`
	Parameters *sampling.Parameters  `json:"parameters,omitempty"`
	Seed       int64                 `json:"seed"`
}

// NewServer wires the HTTP routes
func NewServer(runs *app.RunService, reader ports.LedgerReaderPort) *Server {
	s := &Server{
		router: chi.NewRouter(),
		runs:   runs,
		reader: reader,
		log:    internal.DefaultLogger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/runs", s.handleExecuteRun)
		r.Get("/runs/{runID}", s.handleGetRun)
		r.Get("/runs/{runID}/report", s.handleGetReport)
		r.Get("/recommendations", s.handleRecommendations)
	})

	return s
}

// Handler returns the root http handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleExecuteRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	params := sampling.DefaultParameters()
	if req.Parameters != nil {
		params = *req.Parameters
	}

	record, err := s.runs.Execute(r.Context(), req.Entries, params, req.Seed)
	if err != nil {
		s.writeError(w, statusFor(err), err.Error())
		return
	}

	s.log.Info("run %s completed: %d strata, %d selected", record.RunID, len(record.Results), record.TotalSelected())
	s.writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := core.RunID(chi.URLParam(r, "runID"))

	record, err := s.reader.GetRecord(r.Context(), runID)
	if err != nil {
		s.writeError(w, statusFor(err), err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	runID := core.RunID(chi.URLParam(r, "runID"))

	record, err := s.reader.GetRecord(r.Context(), runID)
	if err != nil {
		s.writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(export.RenderHTML(record))
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n < 0 {
		s.writeError(w, http.StatusBadRequest, "query parameter n must be a non-negative integer")
		return
	}
	s.writeJSON(w, http.StatusOK, sampling.Recommend(n))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case core.IsNotFoundError(err):
		return http.StatusNotFound
	case core.IsValidationError(err), core.IsInvalidParametersError(err),
		core.IsDegenerateVarianceError(err), core.IsInsufficientPopulationError(err),
		core.IsIncompleteRunError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
