package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
	"github.com/RainerBlessing/fuel-drift/internal/storage"
)

// SSHServerConfig controls the network side of the serve command.
type SSHServerConfig struct {
	// Address is the listen address in host:port form.
	Address string

	// HostKeyPath points at the server's host key. When empty a key is
	// generated at ~/.fueldrift/host_key on first start.
	HostKeyPath string

	// DBPath locates the shared run history database.
	DBPath string

	// IdleTimeout closes sessions with no activity after this duration.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns the defaults used by the serve command.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.fueldrift/runs.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves Fuel Drift sessions over SSH via Wish. Every session
// gets its own world seeded independently; all sessions share the run
// history database.
type SSHServer struct {
	config  SSHServerConfig
	gameCfg config.Config
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer builds the Wish server and opens the run database. A
// storage failure is logged and sessions run without persistence.
func NewSSHServer(cfg SSHServerConfig, gameCfg config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fueldrift-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("run database unavailable, scores will not be saved", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		gameCfg: gameCfg,
		store:   store,
		logger:  logger,
	}

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("resolving home directory for host key: %w", homeErr)
		}
		keyPath = filepath.Join(home, ".fueldrift", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(keyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("creating host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.logSessions,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("creating SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler builds a fresh game model for an incoming session, sized to
// the session's PTY and seeded from the clock.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without PTY", "user", sess.User())
		return nil, nil
	}

	runtime := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     uint32(time.Now().UnixNano()),
	}

	model, err := NewModel(s.gameCfg, s.store, runtime)
	if err != nil {
		s.logger.Error("session model", "user", sess.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session open", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session closed", "user", sess.User(), "remote", sess.RemoteAddr().String())
	}
}

// ListenAndServe runs the server until SIGINT/SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("listening", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("serve", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting sessions and closes the run database, giving
// in-flight sessions up to ten seconds to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
