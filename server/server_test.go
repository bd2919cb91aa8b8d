package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firefly/config"
	"firefly/logger"
	"firefly/status"
	"firefly/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(opts Options) http.Handler {
	if opts.App == nil {
		opts.App = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("app:" + r.URL.Path))
		})
	}
	return NewRouter(opts)
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHeartbeat(t *testing.T) {
	rec := serve(testRouter(Options{}), "/api/v1/heartbeat")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestStatus(t *testing.T) {
	h := testRouter(Options{
		Status: func(context.Context) (status.SystemStatus, error) {
			return status.SystemStatus{Hostname: "plex-box", Version: "v1"}, nil
		},
	})
	rec := serve(h, "/api/v1/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got status.SystemStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "plex-box", got.Hostname)
	assert.Equal(t, "v1", got.Version)
}

func TestStatusError(t *testing.T) {
	h := testRouter(Options{
		Status: func(context.Context) (status.SystemStatus, error) {
			return status.SystemStatus{}, errors.New("no host")
		},
	})
	rec := serve(h, "/api/v1/status")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "no host")
}

func TestStatusUnavailable(t *testing.T) {
	rec := serve(testRouter(Options{}), "/api/v1/status")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogs(t *testing.T) {
	var asked int
	h := testRouter(Options{
		Logs: func(limit int) []logger.LogEntry {
			asked = limit
			return []logger.LogEntry{{Level: "INFO", Message: "hello"}}
		},
	})

	rec := serve(h, "/api/v1/logs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultLogLimit, asked)
	var got []logger.LogEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Message)

	serve(h, "/api/v1/logs?limit=5")
	assert.Equal(t, 5, asked)

	serve(h, "/api/v1/logs?limit=100000")
	assert.Equal(t, maxLogLimit, asked)

	rec = serve(h, "/api/v1/logs?limit=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = serve(h, "/api/v1/logs?limit=ten")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogsEmptyIsArray(t *testing.T) {
	rec := serve(testRouter(Options{}), "/api/v1/logs")
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestUnknownPathsReachApp(t *testing.T) {
	h := testRouter(Options{})
	for _, path := range []string{"/", "/login", "/somewhere/else", "/api/v1/unknown"} {
		rec := serve(h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "app:"+path, rec.Body.String(), path)
	}
}

func TestMetrics(t *testing.T) {
	h := testRouter(Options{})
	serve(h, "/api/v1/heartbeat")
	serve(h, "/login")

	rec := serve(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `firefly_http_requests_total{code="200",method="GET",route="/api/v1/heartbeat"} 1`), body)
	assert.True(t, strings.Contains(body, `firefly_http_requests_total{code="200",method="GET",route="app"} 1`), body)
}

func TestNewAppHandler(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultLocale = "fr-FR"
	cfg.Version = "v2"

	h := NewAppHandler(cfg)
	assert.Equal(t, "Plex Monitor", h.Title)
	assert.Equal(t, ui.Description, h.Description)
	assert.Equal(t, "fr-FR", h.Lang)
	assert.Equal(t, "v2", h.Version)
	assert.Equal(t, "fr-FR", h.Env[ui.DefaultLocaleEnv])

	assert.Empty(t, NewAppHandler(config.Default()).Version)
}
