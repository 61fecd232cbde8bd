// Package server exposes the auction engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/openbid/auctiond/internal/auction"
	"github.com/openbid/auctiond/internal/directory"
	"github.com/openbid/auctiond/internal/health"
	"github.com/openbid/auctiond/internal/ledger"
	"github.com/openbid/auctiond/internal/telemetry"
)

// Server routes HTTP requests to the auction engine and user directory.
type Server struct {
	engine *auction.Engine
	dir    *directory.Directory
	health *health.Handler
	logger *slog.Logger
}

// New creates a Server.
func New(engine *auction.Engine, dir *directory.Directory, hh *health.Handler, logger *slog.Logger) *Server {
	return &Server{engine: engine, dir: dir, health: hh, logger: logger}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.health.LivenessHandler()).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.health.ReadinessHandler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users/{uid}/items", s.createItem).Methods(http.MethodPost)
	api.HandleFunc("/users/{uid}/items", s.listItems).Methods(http.MethodGet)
	api.HandleFunc("/users/{uid}/name", s.setName).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}/bids", s.placeBid).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/close", s.closeItem).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/history", s.history).Methods(http.MethodGet)

	r.Use(s.loggingMiddleware)
	return r
}

type createItemRequest struct {
	Name          string  `json:"name"`
	ReservedPrice float64 `json:"reservedPrice"`
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.engine.CreateItem(r.Context(), uid, req.Name, req.ReservedPrice)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	items, err := s.engine.UserItems(r.Context(), uid)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	if items == nil {
		items = []auction.Summary{}
	}
	respondJSON(w, http.StatusOK, items)
}

type setNameRequest struct {
	Name string `json:"name"`
}

func (s *Server) setName(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	var req setNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.dir.SetName(r.Context(), uid, req.Name); err != nil {
		if errors.Is(err, directory.ErrEmptyName) {
			respondError(w, http.StatusBadRequest, "name must not be empty")
			return
		}
		s.respondEngineError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"userid": uid, "name": req.Name})
}

type placeBidRequest struct {
	UserID string  `json:"userid"`
	Price  float64 `json:"price"`
}

func (s *Server) placeBid(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}

	var req placeBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "userid is required")
		return
	}

	res, err := s.engine.PlaceBid(r.Context(), itemID, req.UserID, req.Price)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	// A rejected bid is a normal outcome, not an HTTP error.
	respondJSON(w, http.StatusOK, res)
}

type closeItemRequest struct {
	UserID string `json:"userid"`
}

func (s *Server) closeItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}

	var req closeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "userid is required")
		return
	}

	res, err := s.engine.CloseItem(r.Context(), itemID, req.UserID)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}

	h, err := s.engine.History(r.Context(), itemID)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h)
}

func itemIDVar(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}

func (s *Server) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auction.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auction.ErrNotFound), errors.Is(err, ledger.ErrNotFound):
		respondError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, ledger.ErrConflict):
		respondError(w, http.StatusConflict, "too much contention, retry")
	default:
		telemetry.LogWithTrace(r.Context(), s.logger).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		telemetry.LogWithTrace(r.Context(), s.logger).InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
