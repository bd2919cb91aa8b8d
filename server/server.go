// Package server wires the HTTP surface of the backend: the go-app handler
// serving the SPA, and the small JSON API next to it.
package server

import (
	"compress/flate"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"firefly/config"
	"firefly/i18n"
	"firefly/logger"
	"firefly/status"
	"firefly/ui"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = logger.MaxEntries
)

// StatusFunc reports the host status.
type StatusFunc func(ctx context.Context) (status.SystemStatus, error)

// Options configures the router.
type Options struct {
	// App serves every path the API does not claim.
	App http.Handler
	// Status backs /api/v1/status.
	Status StatusFunc
	// Logs backs /api/v1/logs.
	Logs func(limit int) []logger.LogEntry
	// Registry receives the request metrics and is exposed on /metrics.
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// NewAppHandler builds the go-app handler serving the wasm SPA.
func NewAppHandler(cfg config.Config) *app.Handler {
	title := i18n.Default().T(cfg.DefaultLocale, i18n.AppName)

	version := cfg.Version
	if version == "dev" {
		// go-app derives one from the build, which busts the cache on rebuilds.
		version = ""
	}

	return &app.Handler{
		Name:        title,
		ShortName:   title,
		Title:       title,
		Description: ui.Description,
		Lang:        cfg.DefaultLocale,
		Version:     version,
		Styles: []string{
			"https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css",
		},
		Env: app.Environment{
			ui.DefaultLocaleEnv: cfg.DefaultLocale,
		},
	}
}

// NewRouter returns the complete HTTP handler.
func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	metrics := newMetrics(opts.Registry)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(opts.Logger),
		metrics.middleware,
		middleware.Recoverer,
		middleware.Compress(flate.DefaultCompression),
	)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/heartbeat", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})
		r.Get("/status", statusHandler(opts.Status, opts.Logger))
		r.Get("/logs", logsHandler(opts.Logs))
	})
	router.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))

	if opts.App != nil {
		router.NotFound(opts.App.ServeHTTP)
	}
	return router
}

func statusHandler(check StatusFunc, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check == nil {
			http.Error(w, "status unavailable", http.StatusServiceUnavailable)
			return
		}
		s, err := check(r.Context())
		if err != nil {
			log.Error("status check failed", zap.Error(err))
			http.Error(w, "Failed to get system status: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, s)
	}
}

func logsHandler(logs func(int) []logger.LogEntry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLogLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
				return
			}
			limit = min(n, maxLogLimit)
		}

		entries := []logger.LogEntry{}
		if logs != nil {
			if got := logs(limit); got != nil {
				entries = got
			}
		}
		writeJSON(w, entries)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Debug("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
