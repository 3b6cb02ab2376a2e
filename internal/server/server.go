// Package server serves the /search_stock endpoint and the page that hosts
// the browser suggestion box.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/atinylittleshell/stocksuggest/internal/catalog"
	"github.com/atinylittleshell/stocksuggest/internal/search"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML []byte

const shutdownTimeout = 5 * time.Second

// Config holds configuration for creating a Server.
type Config struct {
	// Addr is the listen address, e.g. ":5000".
	Addr string

	// StaticDir, when set, is served under /static. It holds the compiled
	// browser bundle.
	StaticDir string
}

// Server is the HTTP front of the symbol catalog.
type Server struct {
	addr   string
	engine *gin.Engine
	store  catalog.Store
	logger *zap.Logger
}

// New creates a server over store.
func New(cfg Config, store catalog.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		addr:   cfg.Addr,
		engine: gin.New(),
		store:  store,
		logger: logger,
	}

	s.engine.Use(requestLogger(logger), gin.Recovery())
	s.engine.GET("/", s.index)
	s.engine.GET(search.Path, s.searchStock)
	if cfg.StaticDir != "" {
		s.engine.Static("/static", cfg.StaticDir)
	}

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// searchStock answers with a JSON array of matching symbols, [] when
// nothing matches.
func (s *Server) searchStock(c *gin.Context) {
	query := c.Query("q")

	results, err := s.store.Search(c.Request.Context(), query)
	if err != nil {
		s.logger.Error("catalog search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	if results == nil {
		results = []string{}
	}

	c.JSON(http.StatusOK, results)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
