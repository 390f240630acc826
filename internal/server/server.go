package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/tnguyen21/kestral-chat/internal/app"
	"github.com/tnguyen21/kestral-chat/internal/config"
)

// HostKeyName is the file under HostKeyDir holding the server key.
const HostKeyName = "kestral_chat_host_key"

// Server wraps a wish SSH server that serves the chat TUI.
type Server struct {
	config *config.Config
	logger *log.Logger
	wish   *ssh.Server
}

// New creates a Server configured from cfg.
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	teaHandler := func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		model := app.New(*cfg, logger.With("user", sess.User()))
		return model, []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		}
	}

	// Middleware runs last-to-first: logging wraps the whole session.
	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf(":%d", cfg.Port)),
		wish.WithHostKeyPath(filepath.Join(cfg.HostKeyDir, HostKeyName)),
		wish.WithPublicKeyAuth(publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wish server: %w", err)
	}

	return &Server{config: cfg, logger: logger, wish: s}, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.wish.Addr
}

// Start begins listening for SSH connections. It blocks until the server
// is shut down or encounters a fatal error. Returns nil on graceful shutdown.
func (s *Server) Start() error {
	if err := s.wish.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.wish.Shutdown(ctx)
}

// publicKeyHandler accepts all SSH public keys. The viewer only reads local
// transcripts and is meant to run behind a firewall.
func publicKeyHandler(_ ssh.Context, _ ssh.PublicKey) bool {
	return true
}
