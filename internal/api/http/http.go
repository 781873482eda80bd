// Package httpapi exposes the back-office REST API. All routes live under
// /api; list endpoints filter in the handler over repository snapshots.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/latin-ecom/backoffice-manager/internal/apisrv/auth"
	"github.com/latin-ecom/backoffice-manager/internal/dependency"
)

// Config is the configuration for the http server
type Config struct {
	Port              string   `mapstructure:"port"`
	Address           string   `mapstructure:"address"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
	RequestsPerMinute int      `mapstructure:"requests_per_minute"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	repo dependency.Repository
	auth *auth.Server
	done chan struct{}
}

// New creates a new server
func New(config *Config, repo dependency.Repository, authSrv *auth.Server) *Server {
	return &Server{
		c:    config,
		repo: repo,
		auth: authSrv,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the full route tree. Exposed so tests can mount it on
// httptest servers.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	if s.c.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(s.c.RequestsPerMinute, time.Minute))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/api/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticator)

			r.Get("/auth/me", s.me)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", s.listProducts)
				r.With(s.adminOnly).Post("/", s.addProduct)
				r.With(s.adminOnly).Patch("/{productID}", s.updateProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", s.listOrders)
				r.Post("/", s.addOrder)
				r.Get("/{orderID}", s.getOrder)
				r.Patch("/{orderID}/status", s.updateOrderStatus)
			})

			r.Get("/movements", s.listMovements)

			r.Route("/wallet-requests", func(r chi.Router) {
				r.Get("/", s.listWalletRequests)
				r.With(s.adminOnly).Patch("/{requestID}/status", s.updateWalletRequestStatus)
			})

			r.Route("/connections", func(r chi.Router) {
				r.Get("/", s.listConnections)
				r.With(s.adminOnly).Patch("/{connectionID}", s.updateConnection)
			})

			r.Get("/dashboard", s.dashboard)
			r.Get("/billing", s.billing)
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("backoffice-manager listening on http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the listener down, draining in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
