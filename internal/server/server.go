package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hongminglow/all-in-forms/internal/auth"
	"github.com/hongminglow/all-in-forms/internal/config"
	"github.com/hongminglow/all-in-forms/internal/forms"
	"github.com/hongminglow/all-in-forms/internal/http/handlers"
	"github.com/hongminglow/all-in-forms/internal/metrics"
	"github.com/hongminglow/all-in-forms/internal/middleware"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// Deps are the collaborators the routes need.
type Deps struct {
	Validator *forms.Validator
	Tokens    *auth.TokenManager
	Registry  *prometheus.Registry
	Logger    *zap.Logger
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, deps Deps) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// NewHandler builds the routed, middleware-wrapped handler.
func NewHandler(cfg config.Config, deps Deps) http.Handler {
	r := mux.NewRouter()

	handlers.NewHealthHandler(time.Now()).Register(r)
	recorder := metrics.NewRecorder(deps.Registry)
	handlers.NewAuthHandler(deps.Validator, deps.Tokens, recorder).Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return middleware.Recovery(deps.Logger,
		middleware.CORS(cfg.CORSOrigins,
			middleware.Logging(deps.Logger, r)))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
