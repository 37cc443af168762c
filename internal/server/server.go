// Package server exposes the benchmark harness over an HTTP JSON API: the
// catalogue, the SIMD level registry, single benchmark runs and the stored
// reference sets.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/vellobench/internal/bench"
	"github.com/cwbudde/vellobench/internal/refstore"
	"github.com/cwbudde/vellobench/internal/simd"
	"github.com/cwbudde/vellobench/internal/timing"
)

// Server represents the HTTP server.
type Server struct {
	store  refstore.Store
	addr   string
	server *http.Server

	// runMu serializes benchmark execution: measurements are wall-clock
	// sensitive, so only one run may be in flight.
	runMu sync.Mutex

	histMu  sync.Mutex
	history []RunRecord
}

// RunRecord is one completed run kept in the in-memory history.
type RunRecord struct {
	RunID  string        `json:"run_id"`
	Result timing.Result `json:"result"`
}

// NewServer creates a new HTTP server backed by the given reference store.
func NewServer(addr string, store refstore.Store) *Server {
	return &Server{
		store: store,
		addr:  addr,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/benchmarks", s.handleBenchmarks)
	mux.HandleFunc("/api/v1/simd-levels", s.handleSimdLevels)
	mux.HandleFunc("/api/v1/platform", s.handlePlatform)
	mux.HandleFunc("/api/v1/run", s.handleRun)
	mux.HandleFunc("/api/v1/runs", s.handleRuns)
	mux.HandleFunc("/api/v1/references", s.handleReferences)
	mux.HandleFunc("/api/v1/references/", s.handleReferencesWithName)

	handler := s.loggingMiddleware(s.corsMiddleware(mux))

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: handler,
	}

	slog.Info("Starting HTTP server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleBenchmarks handles GET /api/v1/benchmarks.
func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, bench.List())
}

// levelInfo is one entry of the simd-levels listing.
type levelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// handleSimdLevels handles GET /api/v1/simd-levels.
func (s *Server) handleSimdLevels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	levels := simd.Available()
	out := make([]levelInfo, len(levels))
	for i, l := range levels {
		out[i] = levelInfo{ID: l.Suffix(), Name: l.DisplayName()}
	}
	writeJSON(w, http.StatusOK, out)
}

// handlePlatform handles GET /api/v1/platform.
func (s *Server) handlePlatform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, simd.Platform())
}

// runRequest is the body of POST /api/v1/run.
type runRequest struct {
	ID            string `json:"id"`
	SimdLevel     string `json:"simd_level"`
	CalibrationMS uint64 `json:"calibration_ms"`
	MeasurementMS uint64 `json:"measurement_ms"`
}

// handleRun handles POST /api/v1/run. Only one run executes at a time; a
// concurrent request blocks until the measurement window is free.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	cfg := timing.DefaultConfig()
	if req.CalibrationMS > 0 {
		cfg.CalibrationMS = req.CalibrationMS
	}
	if req.MeasurementMS > 0 {
		cfg.MeasurementMS = req.MeasurementMS
	}
	level := simd.FromSuffix(req.SimdLevel)

	s.runMu.Lock()
	result := bench.Run(req.ID, level, cfg)
	s.runMu.Unlock()

	if result == nil {
		http.Error(w, "Unknown benchmark id", http.StatusNotFound)
		return
	}

	rec := RunRecord{RunID: uuid.New().String(), Result: *result}
	s.histMu.Lock()
	s.history = append(s.history, rec)
	s.histMu.Unlock()

	writeJSON(w, http.StatusOK, rec)
}

// handleRuns handles GET /api/v1/runs.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.histMu.Lock()
	out := make([]RunRecord, len(s.history))
	copy(out, s.history)
	s.histMu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

// handleReferences handles GET /api/v1/references.
func (s *Server) handleReferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	infos, err := s.store.List()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list references: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, infos)
}

// handleReferencesWithName handles /api/v1/references/{name}.
func (s *Server) handleReferencesWithName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/v1/references/")
	if name == "" || strings.Contains(name, "/") {
		http.Error(w, "Reference name required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleGetReference(w, r, name)
	case http.MethodPost, http.MethodPut:
		s.handleSaveReference(w, r, name)
	case http.MethodDelete:
		s.handleDeleteReference(w, r, name)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGetReference(w http.ResponseWriter, r *http.Request, name string) {
	results, err := s.store.Load(name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleSaveReference(w http.ResponseWriter, r *http.Request, name string) {
	var results []timing.Result
	if err := json.NewDecoder(r.Body).Decode(&results); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}
	if err := s.store.Save(name, results); err != nil {
		http.Error(w, fmt.Sprintf("Failed to save reference: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleDeleteReference(w http.ResponseWriter, r *http.Request, name string) {
	if err := s.store.Delete(name); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// corsMiddleware adds CORS headers.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
