package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/config"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
	maxHeaderBytes         = 64 << 10
)

// Server wraps http.Server with graceful shutdown support.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	ready    chan struct{}
	mu       sync.Mutex
	boundTo  string
	readyOne sync.Once
}

// NewServer creates a new HTTP server from the given config and handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start binds the listen address and serves until Shutdown. It returns nil
// on graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.markReady("")
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.markReady(ln.Addr().String())
	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Ready is closed once Start has bound its listener (or failed to).
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline. If ctx has no deadline,
// a default 10-second timeout is applied.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	return s.srv.Shutdown(ctx)
}

// Addr returns the bound address once listening (useful with port 0), and
// the configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boundTo != "" {
		return s.boundTo
	}
	return s.srv.Addr
}

func (s *Server) markReady(addr string) {
	s.readyOne.Do(func() {
		s.mu.Lock()
		s.boundTo = addr
		s.mu.Unlock()
		close(s.ready)
	})
}
