// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/handler"
	"github.com/lerkeveld/underground/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer

	hooks           []ShutdownHook
	shutdownTimeout time.Duration

	quit     chan struct{}
	quitOnce sync.Once

	logger *logger.Logger
}

// NewServer creates the HTTP server for handlers. The hooks run in order
// after the listener has stopped, sharing the shutdown timeout.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, hooks ...ShutdownHook) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		hooks:           hooks,
		shutdownTimeout: timeout,
		quit:            make(chan struct{}),
		logger:          logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT, SIGQUIT or Shutdown, then shuts
// down gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx, s.httpServer.listenAndServe)
}

// Shutdown makes RunServer stop. It does not wait for it.
func (s *server) Shutdown() {
	s.quitOnce.Do(func() { close(s.quit) })
}

func (s *server) run(ctx context.Context, serve func() error) {
	served := make(chan error, 1)
	go func() {
		served <- serve()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case <-s.quit:
	case err := <-served:
		if err != nil {
			s.logger.Err(err).Str("func", "*server.run").Msg("HTTP server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	// listener first, so no new work reaches the hooks' queues
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Str("func", "*server.run").Msg("HTTP server did not stop cleanly")
	}

	for _, hook := range s.hooks {
		if err := hook(shutdownCtx); err != nil {
			s.logger.Err(err).Str("func", "*server.run").Msg("shutdown hook failed")
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}
