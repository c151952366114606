package server

import (
	"context"
	"fmt"
	"os/signal"
	"slices"
	"sync"
	"syscall"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/handler"
	"github.com/MKhiriev/worldsync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	mu       sync.Mutex
	hooks    []func()
	shutdown sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("func", "NewServer").Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoControlAPI
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) OnShutdown(fn func()) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Str("func", "*server.RunServer").Msg("stop signal received")
	case err = <-errCh:
		if err != nil {
			err = fmt.Errorf("http server: %w", err)
		}
	}

	s.Shutdown()
	s.logger.Info().Str("func", "*server.RunServer").Msg("server shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.shutdown.Do(func() {
		s.httpServer.Shutdown()

		s.mu.Lock()
		hooks := slices.Clone(s.hooks)
		s.mu.Unlock()

		for _, fn := range slices.Backward(hooks) {
			fn()
		}
	})
}
