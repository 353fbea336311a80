package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 10 * time.Second
	defaultWriteTimeout     = 15 * time.Second
	// Headroom over the explanation call for evaluating and encoding.
	writeTimeoutMargin = 5 * time.Second
)

type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a Server. Its write timeout always exceeds explainTimeout.
func NewServer(handler http.Handler, listener net.Listener, explainTimeout time.Duration) *Server {
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: writeTimeout(explainTimeout),
			IdleTimeout:  60 * time.Second,
		},
	}
}

func writeTimeout(explainTimeout time.Duration) time.Duration {
	if t := explainTimeout + writeTimeoutMargin; t > defaultWriteTimeout {
		return t
	}
	return defaultWriteTimeout
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := zap.S().Named("server")

	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		s.httpServer.SetKeepAlivesEnabled(false)
		if err := s.httpServer.Shutdown(ctxTimeout); err != nil {
			logger.Errorw("error during server shutdown", "error", err)
		}
	}()

	logger.Infof("serving calculator on http://%s", s.listener.Addr())
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
