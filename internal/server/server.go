// Package server exposes the step generators and the BST collaborator over
// HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
)

// Deps are shared by every handler.
type Deps struct {
	Config   *config.Config
	Registry *algo.Registry
	Metrics  *metrics.Service
	Logger   *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// random returns a request-local generator seeded from the shared one.
func (d *Deps) random() *rand.Rand {
	d.mu.Lock()
	defer d.mu.Unlock()
	return rand.New(rand.NewSource(d.rng.Int63()))
}

type Server struct {
	deps   *Deps
	engine *gin.Engine
}

func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	deps := &Deps{
		Config:   cfg,
		Registry: algo.NewRegistry(),
		Metrics:  metrics.NewService(),
		Logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}

	if err := registerValidators(); err != nil {
		logger.Error("binding validators not registered", "error", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(logger, deps.Metrics))
	SetupRoutes(engine, deps)

	return &Server{deps: deps, engine: engine}
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Metrics() *metrics.Service { return s.deps.Metrics }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.deps.Config.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.deps.Logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
