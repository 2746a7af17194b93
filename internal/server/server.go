package server

import (
	"context"
	"net/http"
	"time"

	"github.com/lifeviz/lifeviz/internal/calculation"
	"github.com/lifeviz/lifeviz/internal/lifedata"
	"github.com/lifeviz/lifeviz/internal/storage"
)

// Server bundles the engine, data provider, and snapshot store behind the
// JSON API the visualizer front end talks to.
type Server struct {
	engine    *calculation.Engine
	provider  *lifedata.Provider
	snapshots storage.SnapshotRepository
	limiter   *RateLimiter
	logger    calculation.Logger
}

// Options configure a Server.
type Options struct {
	Engine    *calculation.Engine
	Provider  *lifedata.Provider
	Snapshots storage.SnapshotRepository
	Logger    calculation.Logger

	// RateLimit is requests per minute per client IP; <= 0 disables limiting.
	RateLimit int
}

// New creates a Server from options, filling in defaults for anything unset.
func New(opts Options) *Server {
	s := &Server{
		engine:    opts.Engine,
		provider:  opts.Provider,
		snapshots: opts.Snapshots,
		logger:    opts.Logger,
	}
	if s.engine == nil {
		s.engine = calculation.NewEngine()
	}
	if s.snapshots == nil {
		s.snapshots = storage.NewMemorySnapshotRepository()
	}
	if s.logger == nil {
		s.logger = calculation.NopLogger{}
	}
	if opts.RateLimit > 0 {
		s.limiter = NewRateLimiter(opts.RateLimit, time.Minute)
	}
	return s
}

// Close releases background resources.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// Routes returns the API handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/countries", s.handleCountries)
	mux.HandleFunc("GET /api/life-expectancy", s.handleLifeExpectancy)
	mux.HandleFunc("POST /api/analyze/trend", s.handleTrend)
	mux.HandleFunc("POST /api/analyze/cost-benefit", s.handleCostBenefit)
	mux.HandleFunc("GET /api/phases", s.handlePhases)
	mux.HandleFunc("POST /api/report", s.handleReport)
	mux.HandleFunc("POST /api/snapshots", s.handleSaveSnapshot)
	mux.HandleFunc("GET /api/snapshots", s.handleListSnapshots)
	mux.HandleFunc("GET /api/snapshots/{id}", s.handleGetSnapshot)

	var handler http.Handler = mux
	if s.limiter != nil {
		handler = RateLimitMiddleware(s.limiter, handler)
	}
	return handler
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts it
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("life visualizer API listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
