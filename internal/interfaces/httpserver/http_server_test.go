package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/domain/creative"
	"adcraft/creative-api/internal/domain/persona"
	"adcraft/creative-api/internal/interfaces/httpserver/handlers"
)

type stubTextGen struct {
	response string
	calls    int
}

func (s *stubTextGen) GenerateText(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.response, nil
}

type stubImageGen struct {
	count int
}

func (s *stubImageGen) GenerateImages(_ context.Context, _, _ string, count int) ([][]byte, error) {
	n := s.count
	if n > count {
		n = count
	}
	buffers := make([][]byte, n)
	for i := range buffers {
		buffers[i] = []byte{0x89, 0x50, 0x4E, 0x47}
	}
	return buffers, nil
}

type stubStore struct {
	rows []persona.SegmentRow
}

func (s *stubStore) FetchSegments(_ context.Context, _ int) ([]persona.SegmentRow, error) {
	return s.rows, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServiceName:       "creative-api",
		Environment:       "test",
		HTTPPort:          8080,
		DefaultVariations: 3,
		PersonaRowLimit:   30,
		ShutdownTimeout:   time.Second,
	}
}

func newTestServer(t *testing.T, cfg *config.Config, text creative.TextGenerator, image creative.ImageGenerator, rows []persona.SegmentRow) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	creativeService := creative.NewService(text, image, nil, nil, 5*time.Second, log)
	personaService := persona.NewService(&stubStore{rows: rows}, cfg.PersonaRowLimit, log)
	provider := handlers.NewProvider(cfg, creativeService, personaService, nil, log)

	return New(cfg, log, provider).Engine()
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGenerateAdContentDefaultsToThreeVariations(t *testing.T) {
	text := &stubTextGen{response: "1. First ad copy with words\n2. Second ad copy with words\n3. Third ad copy with words"}
	engine := newTestServer(t, testConfig(t), text, &stubImageGen{count: 3}, nil)

	w := postJSON(t, engine, "/api/v1/generate_ad_content", map[string]any{
		"product":             "Trail Shoes",
		"product_description": "Lightweight hiking shoe",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Creatives []struct {
			AdText      string `json:"ad_text"`
			AdImageData string `json:"ad_image_data"`
		} `json:"creatives"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Creatives) != 3 {
		t.Fatalf("expected 3 creatives by default, got %d", len(resp.Creatives))
	}
	for i, c := range resp.Creatives {
		if c.AdText == "" {
			t.Errorf("creative %d has empty ad_text", i)
		}
		if !strings.HasPrefix(c.AdImageData, "data:image/png;base64,") {
			t.Errorf("creative %d image is not a data URI: %q", i, c.AdImageData)
		}
	}
}

func TestGenerateAdContentSingleVariation(t *testing.T) {
	text := &stubTextGen{response: "## Trail Shoes\nGo further with less weight."}
	engine := newTestServer(t, testConfig(t), text, &stubImageGen{count: 1}, nil)

	w := postJSON(t, engine, "/api/v1/generate_ad_content", map[string]any{
		"product":              "Trail Shoes",
		"product_description":  "Lightweight hiking shoe",
		"number_of_variations": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGenerateAdContentRejectsBadCount(t *testing.T) {
	// 0 must be rejected, not coerced to the default count.
	for _, count := range []int{0, 5, -1} {
		text := &stubTextGen{response: "irrelevant"}
		engine := newTestServer(t, testConfig(t), text, &stubImageGen{count: 1}, nil)

		w := postJSON(t, engine, "/api/v1/generate_ad_content", map[string]any{
			"product":              "Trail Shoes",
			"product_description":  "Lightweight hiking shoe",
			"number_of_variations": count,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("count=%d: status = %d, want 400", count, w.Code)
		}
		if text.calls != 0 {
			t.Errorf("count=%d: text generator called %d times before validation", count, text.calls)
		}
	}
}

func TestGenerateAdContentRejectsMissingFields(t *testing.T) {
	engine := newTestServer(t, testConfig(t),
		&stubTextGen{response: "irrelevant"}, &stubImageGen{count: 1}, nil)

	w := postJSON(t, engine, "/api/v1/generate_ad_content", map[string]any{
		"product": "Trail Shoes",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing description", w.Code)
	}
}

func TestGenerateAdContentPartialFailureIs500(t *testing.T) {
	text := &stubTextGen{response: "1. First ad copy with words\n2. Second ad copy with words\n3. Third ad copy with words"}
	engine := newTestServer(t, testConfig(t), text, &stubImageGen{count: 2}, nil)

	w := postJSON(t, engine, "/api/v1/generate_ad_content", map[string]any{
		"product":              "Trail Shoes",
		"product_description":  "Lightweight hiking shoe",
		"number_of_variations": 3,
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 on partial image failure", w.Code)
	}
	if !strings.Contains(w.Body.String(), "image generation failed") {
		t.Errorf("error body should name the failing stage: %s", w.Body.String())
	}
}

func TestPersonaSegmentsEndpoint(t *testing.T) {
	rows := []persona.SegmentRow{
		{AgeGroupProfile: "18-24", SegmentDescription: "students"},
		{AgeGroupProfile: "25-34", SegmentDescription: "young professionals"},
	}
	engine := newTestServer(t, testConfig(t), &stubTextGen{}, &stubImageGen{}, rows)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/persona-segments", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 columns, got %v", resp)
	}
	if len(resp["persona_age_group_profile"]) != 2 {
		t.Errorf("unexpected age column: %v", resp["persona_age_group_profile"])
	}
}

func TestRecentGenerationsWithoutAuditLog(t *testing.T) {
	engine := newTestServer(t, testConfig(t), &stubTextGen{}, &stubImageGen{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/recent", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501 when audit log is not configured", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestServer(t, testConfig(t), &stubTextGen{}, &stubImageGen{}, nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}
}

func TestRequestIDHeaderPropagation(t *testing.T) {
	engine := newTestServer(t, testConfig(t), &stubTextGen{}, &stubImageGen{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header on response")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "test-id-123")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-Id"); got != "test-id-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}
}

func TestSPAFallbackServesIndex(t *testing.T) {
	staticDir := t.TempDir()
	index := filepath.Join(staticDir, "index.html")
	if err := os.WriteFile(index, []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	cfg := testConfig(t)
	cfg.StaticDir = staticDir
	engine := newTestServer(t, cfg, &stubTextGen{}, &stubImageGen{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "app") {
		t.Errorf("expected SPA entry document, status = %d body = %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unmatched API path should stay 404, got %d", w.Code)
	}
}
