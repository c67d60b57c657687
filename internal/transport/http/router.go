package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ribnuu/PERN-Task1-sub000/internal/middleware"
)

type RouterOptions struct {
	AllowOrigins []string
	Registry     *prometheus.Registry
	Logger       *zap.Logger
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	metrics := middleware.NewMetrics(reg)
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/ready", h.Ready).Methods(http.MethodGet)
	api.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	api.HandleFunc("/person", h.CreatePerson).Methods(http.MethodPost)
	api.HandleFunc("/person/{id}", h.GetPerson).Methods(http.MethodGet)
	api.HandleFunc("/person/{id}", h.UpdatePerson).Methods(http.MethodPut)
	api.HandleFunc("/person/{id}", h.DeletePerson).Methods(http.MethodDelete)

	// mux skips Use middleware when no route matches.
	r.NotFoundHandler = metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, StatusNotFound, "endpoint not found", nil)
	}))
	r.MethodNotAllowedHandler = metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed", nil)
	}))

	// CORS sits outside the router so preflights never hit 405.
	var handler http.Handler = r
	handler = middleware.CORS(opts.AllowOrigins)(handler)
	handler = middleware.Recover(logger)(handler)
	handler = middleware.AccessLog(logger)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
