// Package keepalive serves the tiny liveness HTTP endpoint some hosting
// platforms require to keep the bot process running.
package keepalive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cinebob/internal/logging"
)

// CatalogSizer reports how many movies are loaded, for the health endpoint.
type CatalogSizer interface {
	Len() int
}

// Server answers "I'm alive" on / and catalog stats on /healthz.
type Server struct {
	bind    string
	catalog CatalogSizer
	logger  *slog.Logger

	httpServer *http.Server
	listener   net.Listener
}

// NewServer builds a keepalive server bound to the given address.
func NewServer(bind string, catalog CatalogSizer, logger *slog.Logger) *Server {
	return &Server{
		bind:    bind,
		catalog: catalog,
		logger:  logging.NewComponentLogger(logger, "keepalive"),
	}
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("bind keepalive listener: %w", err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "I'm alive")
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		size := 0
		if s.catalog != nil {
			size = s.catalog.Len()
		}
		fmt.Fprintf(w, "ok movies=%d\n", size)
	})

	s.httpServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Warn("keepalive server stopped",
				logging.Error(err),
				logging.String(logging.FieldEventType, "keepalive_stopped"))
		}
	}()

	s.logger.Info("keepalive listening", logging.String("bind", s.Addr()))
	return nil
}

// Addr returns the bound address, useful when the port was chosen by the OS.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
