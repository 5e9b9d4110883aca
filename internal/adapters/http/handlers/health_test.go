package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3infra-foundation/mda-site/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func newHealthEngine(t *testing.T, checkers ...ports.HealthChecker) *gin.Engine {
	t.Helper()

	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		require.NoError(t, registry.Register(c))
	}

	engine := gin.New()
	NewHealthHandler(registry, NewBuildInfo("1.2.3", "abc123", "2026-10-01T00:00:00Z")).RegisterRoutes(engine)

	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("1.0.0", "deadbeef", "now")

	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "deadbeef", info.Commit)
	assert.Equal(t, "now", info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestLiveness(t *testing.T) {
	w := get(newHealthEngine(t, stubChecker{name: "landing_page", err: errors.New("down")}), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "unhealthy", checkErr: errors.New("render failed"), wantStatus: http.StatusServiceUnavailable, wantBody: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newHealthEngine(t, stubChecker{name: "landing_page", err: tt.checkErr}), "/-/ready")

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantBody, resp.Status)
			require.Contains(t, resp.Checks, "landing_page")

			if tt.checkErr != nil {
				assert.Equal(t, "render failed", resp.Checks["landing_page"].Message)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	w := get(newHealthEngine(t), "/-/build")

	assert.Equal(t, http.StatusOK, w.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
}

func TestMetrics(t *testing.T) {
	w := get(newHealthEngine(t), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
