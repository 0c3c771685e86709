// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the dialog host as an HTTP webhook. The voice
// platform adapter posts one JSON envelope per turn and speaks the reply.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

const shutdownTimeout = 10 * time.Second

// Turner runs one conversational turn.
type Turner interface {
	Turn(ctx context.Context, req types.TurnRequest) types.Reply
}

// Server is the webhook HTTP server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the router and HTTP server for cfg.
func New(turner Turner, cfg types.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	engine := gin.New()
	engine.Use(recovery(logger), requestLogger(logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.POST("/v1/turns", turnHandler(turner, logger))

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", zap.String("addr", s.http.Addr))
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

func turnHandler(turner Turner, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TurnRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("invalid turn request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reply := turner.Turn(c.Request.Context(), req)
		c.JSON(http.StatusOK, reply)
	}
}
