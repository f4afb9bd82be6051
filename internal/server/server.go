package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"tunebox/internal/accounts"
	"tunebox/internal/catalog"
	"tunebox/internal/shared"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, authentication, CORS, rate limiting, etc.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the tunebox service.
// Implementations handle groups of endpoints (accounts, catalog).
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the path patterns this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// Server wires the account and catalog handlers into a router and manages the
// lifecycle of the underlying [http.Server].
type Server struct {
	router     *BasicRouter
	httpServer *http.Server
	logger     *log.Logger
}

// ServerOpts contains dependencies for creating a Server.
type ServerOpts struct {
	Addr     string
	Accounts *accounts.Service
	Catalog  catalog.Service
	Logger   *log.Logger
}

// NewServer builds the full route table with logging and bearer-token
// middleware applied router-wide.
func NewServer(opts ServerOpts) *Server {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	router := NewBasicRouter()
	router.Use(RequestLogger(opts.Logger))
	router.Use(Authenticate(opts.Accounts.Tokens()))

	router.Handler(NewAccountHandler(opts.Accounts, opts.Logger))
	router.Handler(NewMusicHandler(opts.Catalog, opts.Logger))

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:    opts.Addr,
			Handler: router,
		},
		logger: opts.Logger,
	}
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() *BasicRouter {
	return s.router
}

// Start runs the server until ctx is cancelled, then drains connections with a
// five second grace period.
func (s *Server) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Infof("listening at %v", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
