package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *clockwork.FakeClock, http.Handler) {
	t.Helper()
	srv := NewServer("", section.DefaultRegistry(), sample.Default())
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC))
	srv.SetClock(clock)
	return srv, clock, srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	_, clock, h := newTestServer(t)
	clock.Advance(90 * time.Second)

	w := get(t, h, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1m30s", body["uptime"])
	assert.EqualValues(t, 5, body["sections"])
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	t.Parallel()

	_, _, h := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Contains(t, []int{http.StatusMethodNotAllowed, http.StatusNotFound}, w.Code)
}

func TestSectionsEndpoint(t *testing.T) {
	t.Parallel()

	_, _, h := newTestServer(t)
	w := get(t, h, "/api/sections")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Default  string            `json:"default"`
		Sections []section.Section `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dashboard", body.Default)
	assert.Equal(t, section.DefaultRegistry().Sections(), body.Sections)
}

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       string
		resolved string
		fallback bool
		banner   bool
	}{
		{"dashboard", "dashboard", false, true},
		{"forecasting", "dashboard", false, false},
		{"alerts", "alerts", false, false},
		{"predictions", "predictions", false, false},
		{"nonexistent", "dashboard", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, _, h := newTestServer(t)
			w := get(t, h, "/api/sections/"+tt.id)
			require.Equal(t, http.StatusOK, w.Code)

			body := decode(t, w)
			assert.Equal(t, tt.id, body["requested"])
			assert.Equal(t, tt.resolved, body["resolved"])
			assert.Equal(t, tt.fallback, body["fallback"])
			assert.Equal(t, tt.banner, body["banner"])
		})
	}
}

func TestResolveEndpoint_CountsFallbacks(t *testing.T) {
	t.Parallel()

	srv, _, h := newTestServer(t)
	get(t, h, "/api/sections/nonexistent")
	get(t, h, "/api/sections/also-missing")
	get(t, h, "/api/sections/alerts")

	m := srv.Metrics()
	assert.InDelta(t, 2, testutil.ToFloat64(m.Fallbacks), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Resolutions.WithLabelValues("dashboard")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Resolutions.WithLabelValues("alerts")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/sections/:id", "200")), 0)
}

func TestRenderEndpoint(t *testing.T) {
	t.Parallel()

	srv, _, h := newTestServer(t)

	w := get(t, h, "/api/sections/alerts/render?width=120")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "alerts", w.Header().Get("X-Section-Renderer"))
	assert.Contains(t, w.Body.String(), "Alert Configuration")
	assert.NotContains(t, w.Body.String(), "AI-Powered Prediction")

	w = get(t, h, "/api/sections/dashboard/render")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI-Powered Prediction")

	w = get(t, h, "/api/sections/nonexistent/render")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Section-Fallback"))
	assert.Contains(t, w.Body.String(), "Hourly Forecast")
	assert.NotContains(t, w.Body.String(), "AI-Powered Prediction")

	assert.InDelta(t, 2, testutil.ToFloat64(srv.Metrics().Renders.WithLabelValues("dashboard")), 0)
}

func TestRenderEndpoint_BadWidth(t *testing.T) {
	t.Parallel()

	_, _, h := newTestServer(t)
	w := get(t, h, "/api/sections/alerts/render?width=wide")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	_, _, h := newTestServer(t)
	get(t, h, "/api/sections/nonexistent")

	w := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cloudguard_section_fallbacks_total 1")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestStartStop(t *testing.T) {
	srv := NewServer("127.0.0.1:0", section.DefaultRegistry(), sample.Default())
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
