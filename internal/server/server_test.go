package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/cwbudde/vellobench/internal/bench"
	"github.com/cwbudde/vellobench/internal/refstore"
	"github.com/cwbudde/vellobench/internal/simd"
	"github.com/cwbudde/vellobench/internal/timing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := refstore.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return NewServer(":0", store)
}

func TestServer_ListBenchmarks(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/benchmarks", nil)
	w := httptest.NewRecorder()
	s.handleBenchmarks(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var infos []bench.Info
	if err := json.NewDecoder(w.Body).Decode(&infos); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(infos) == 0 {
		t.Fatal("Benchmark list should not be empty")
	}
	for _, in := range infos {
		if in.ID != in.Category+"/"+in.Name {
			t.Errorf("Malformed entry %+v", in)
		}
	}
}

func TestServer_SimdLevels(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/simd-levels", nil)
	w := httptest.NewRecorder()
	s.handleSimdLevels(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var levels []levelInfo
	if err := json.NewDecoder(w.Body).Decode(&levels); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(levels) == 0 {
		t.Fatal("Level list should not be empty")
	}
	// Scalar is always supported and always listed last.
	if levels[len(levels)-1].ID != simd.Scalar.Suffix() {
		t.Errorf("Last level = %q, want scalar", levels[len(levels)-1].ID)
	}
	for _, l := range levels {
		if l.ID == "" || l.Name == "" {
			t.Errorf("Incomplete level entry %+v", l)
		}
	}
}

func TestServer_Platform(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/platform", nil)
	w := httptest.NewRecorder()
	s.handlePlatform(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var p simd.PlatformInfo
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if p.Arch != runtime.GOARCH || p.OS != runtime.GOOS {
		t.Errorf("Platform = %+v", p)
	}
}

func TestServer_RunBenchmark(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(runRequest{
		ID:            "fine/fill/opaque_short",
		SimdLevel:     "scalar",
		CalibrationMS: 100,
		MeasurementMS: 100,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/run", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handleRun(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var rec RunRecord
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if rec.RunID == "" {
		t.Error("Run ID should not be empty")
	}
	if rec.Result.ID != "fine/fill/opaque_short" || rec.Result.SimdVariant != "scalar" {
		t.Errorf("Result identity wrong: %+v", rec.Result)
	}
	if rec.Result.Statistics.Iterations < 1 {
		t.Errorf("No iterations recorded: %+v", rec.Result.Statistics)
	}

	// The run must appear in the history.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	w = httptest.NewRecorder()
	s.handleRuns(w, req)

	var hist []RunRecord
	if err := json.NewDecoder(w.Body).Decode(&hist); err != nil {
		t.Fatalf("Failed to decode history: %v", err)
	}
	if len(hist) != 1 || hist[0].RunID != rec.RunID {
		t.Errorf("History = %+v, want the one completed run", hist)
	}
}

func TestServer_RunUnknownBenchmark(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(runRequest{ID: "no/such_benchmark", CalibrationMS: 100, MeasurementMS: 100})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/run", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handleRun(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestServer_RunValidation(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/run", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	s.handleRun(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Missing id: expected status 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/run", bytes.NewReader([]byte(`{not json`)))
	w = httptest.NewRecorder()
	s.handleRun(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Bad JSON: expected status 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/run", nil)
	w = httptest.NewRecorder()
	s.handleRun(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET run: expected status 405, got %d", w.Code)
	}
}

func TestServer_ReferenceLifecycle(t *testing.T) {
	s := newTestServer(t)
	results := []timing.Result{
		{
			ID:          "fine/fill/opaque_short",
			Category:    "fine/fill",
			Name:        "opaque_short",
			SimdVariant: "scalar",
			Statistics:  timing.Statistics{MeanNS: 42.0, Iterations: 100},
			TimestampMS: 1700000000000,
			Platform:    simd.Platform(),
		},
	}

	// Save.
	body, _ := json.Marshal(results)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/references/baseline", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handleReferencesWithName(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Save: expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	// List.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/references", nil)
	w = httptest.NewRecorder()
	s.handleReferences(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("List: expected status 200, got %d", w.Code)
	}
	var infos []refstore.Info
	if err := json.NewDecoder(w.Body).Decode(&infos); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "baseline" || infos[0].Count != 1 {
		t.Errorf("List = %+v", infos)
	}

	// Load.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/references/baseline", nil)
	w = httptest.NewRecorder()
	s.handleReferencesWithName(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Load: expected status 200, got %d", w.Code)
	}
	var loaded []timing.Result
	if err := json.NewDecoder(w.Body).Decode(&loaded); err != nil {
		t.Fatalf("Failed to decode reference set: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != results[0].ID {
		t.Errorf("Loaded = %+v", loaded)
	}

	// Delete.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/references/baseline", nil)
	w = httptest.NewRecorder()
	s.handleReferencesWithName(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Delete: expected status 204, got %d", w.Code)
	}

	// Load after delete.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/references/baseline", nil)
	w = httptest.NewRecorder()
	s.handleReferencesWithName(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Load after delete: expected status 404, got %d", w.Code)
	}
}

func TestServer_ReferenceNameRequired(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/references/", nil)
	w := httptest.NewRecorder()
	s.handleReferencesWithName(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Empty name: expected status 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/references/a/b", nil)
	w = httptest.NewRecorder()
	s.handleReferencesWithName(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Nested name: expected status 400, got %d", w.Code)
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t)
	handler := s.corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight request should not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/run", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS headers missing")
	}
}
