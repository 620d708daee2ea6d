package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/devlance074/pricing-ui-kit/internal/config"
	"github.com/devlance074/pricing-ui-kit/internal/logger"
	"github.com/devlance074/pricing-ui-kit/internal/tui/shell"
	"github.com/devlance074/pricing-ui-kit/internal/variants"
)

const shutdownTimeout = 10 * time.Second

// Options are the gallery settings every session starts from.
type Options struct {
	Registry *variants.Registry
	Variant  string
	DarkMode bool
	Logger   *logger.Logger
}

// Runtime wires config, middleware and the wish server as a testable unit.
type Runtime struct {
	cfg    config.SSH
	opts   Options
	log    *logger.Logger
	server *ssh.Server
}

// New builds the SSH server. Each session gets its own shell, renderer and
// logger; nothing mutable is shared between sessions.
func New(cfg config.SSH, opts Options) (*Runtime, error) {
	if opts.Registry == nil {
		opts.Registry = variants.DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := &Runtime{cfg: cfg, opts: opts, log: log}

	// The last middleware runs first.
	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(r.teaHandler),
			activeterm.Middleware(),
			SessionLimitMiddleware(cfg.MaxSessions, log),
			logging.MiddlewareWithLogger(log),
		),
	)
	if err != nil {
		return nil, err
	}

	r.server = srv
	return r, nil
}

// Address returns the listen address.
func (r *Runtime) Address() string {
	return r.server.Addr
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := r.server.Shutdown(shutdownCtx); err != nil {
			r.log.Error(err, "ssh shutdown")
		}
	}()

	r.log.WithFields(map[string]any{
		"address":      r.Address(),
		"host_key":     r.cfg.HostKeyPath,
		"idle_timeout": r.cfg.IdleTimeout.String(),
		"max_sessions": r.cfg.MaxSessions,
	}).Info("serving pricing gallery over ssh")

	err := r.server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) || err == nil {
		r.log.Info("ssh server stopped")
		return nil
	}
	return err
}

// teaHandler mounts a fresh shell for one session.
func (r *Runtime) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	log := r.log.WithFields(map[string]any{
		"session_id": uuid.New().String(),
		"user":       sess.User(),
		"remote":     remoteIP(sess),
	})

	m := shell.NewModel(r.opts.Registry, shell.Options{
		Variant:  r.opts.Variant,
		DarkMode: r.opts.DarkMode,
		Renderer: bubbletea.MakeRenderer(sess),
		Logger:   log,
	})
	if pty, _, ok := sess.Pty(); ok {
		m.Resize(pty.Window.Width, pty.Window.Height)
	}

	log.Info("session started")
	return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}
