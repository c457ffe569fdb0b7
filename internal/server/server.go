// Package server exposes a Solver over HTTP for UI clients.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

// LadderResponse is the body of a successful /ladder query.
type LadderResponse struct {
	Ladder []string `json:"ladder"`
	Length int      `json:"length"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// NeighborsResponse is the body of a /lexicon/neighbors query.
type NeighborsResponse struct {
	Word      string   `json:"word"`
	Neighbors []string `json:"neighbors"`
}

// Server routes HTTP queries to a Solver.
type Server struct {
	solver  *ladder.Solver
	log     logrus.FieldLogger
	timeout time.Duration
}

// New builds a Server. A zero timeout disables the per-query deadline.
func New(solver *ladder.Solver, log logrus.FieldLogger, timeout time.Duration) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{solver: solver, log: log, timeout: timeout}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/ladder", s.handleLadder)
	r.Get("/lexicon/neighbors/{word}", s.handleNeighbors)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"words":  s.solver.Lexicon().Len(),
	})
}

func (s *Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	path, err := s.solver.FindContext(ctx, from, to)
	log := s.log.WithFields(logrus.Fields{
		"from":       from,
		"to":         to,
		"request_id": middleware.GetReqID(r.Context()),
	})
	if err != nil {
		status, reason := classify(err)
		log.WithError(err).Debug("ladder query failed")
		writeJSON(w, status, ErrorResponse{Error: err.Error(), Reason: reason})
		return
	}
	log.WithField("length", path.Len()).Debug("ladder query served")
	writeJSON(w, http.StatusOK, LadderResponse{Ladder: path, Length: path.Len()})
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	word := lexicon.Normalize(chi.URLParam(r, "word"))
	lx := s.solver.Lexicon()
	if !lx.Contains(word) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ladder.ErrUnknownWord.Error(), Reason: "unknown_word"})
		return
	}
	nbrs := lx.Neighbors(word)
	if nbrs == nil {
		nbrs = []string{}
	}
	writeJSON(w, http.StatusOK, NeighborsResponse{Word: word, Neighbors: nbrs})
}

// classify maps a search error to an HTTP status and a stable reason code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ladder.ErrEmptyInput):
		return http.StatusBadRequest, "empty_input"
	case errors.Is(err, ladder.ErrUnknownWord):
		return http.StatusNotFound, "unknown_word"
	case errors.Is(err, ladder.ErrUnreachable):
		return http.StatusUnprocessableEntity, "unreachable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "cancelled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
