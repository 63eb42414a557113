package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/handler"
	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/utils"
)

type server struct {
	httpServer *httpServer
	portPath   string
	logger     *logger.Logger
}

// NewServer prepares the HTTP server. portPath, when not empty, receives the
// bound port once the listener is up.
func NewServer(handlers *handler.Handlers, cfg config.Server, portPath string, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		portPath:   portPath,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Run(ctx context.Context) error {
	port, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.logger.Info().Int("port", port).Msg("HTTP server listening")

	if s.portPath != "" {
		if err = utils.WritePortFile(s.portPath, port); err != nil {
			_ = s.httpServer.listener.Close()
			return err
		}
		s.logger.Info().Str("path", s.portPath).Msg("port file written")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
	}

	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
