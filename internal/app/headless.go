package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/aipros/console/internal/config"
	"github.com/aipros/console/internal/console"
	"github.com/aipros/console/ui/components"
)

// PrintSurface renders console output as plain lines, for one-shot
// commands run outside the TUI.
type PrintSurface struct {
	mu    sync.Mutex
	out   io.Writer
	last  *console.Toast
	width int
}

func NewPrintSurface(out io.Writer) *PrintSurface {
	return &PrintSurface{out: out, width: 80}
}

func (s *PrintSurface) SetInput(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, components.RenderEcho(text))
}

func (s *PrintSurface) SetBusy(busy bool) {
	if !busy {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, components.RenderStatus("AIPROS is thinking…", false, "", 0))
}

func (s *PrintSurface) ShowToast(t console.Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &t
	fmt.Fprintln(s.out, components.RenderToast(&t, s.width))
}

// HideToast is a no-op: printed lines stay on screen.
func (s *PrintSurface) HideToast() {}

// LastToast returns the most recent toast.
func (s *PrintSurface) LastToast() (console.Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return console.Toast{}, false
	}
	return *s.last, true
}

// RunOnce builds a console on a PrintSurface, runs fn, and reports whether
// the final toast was an error.
func RunOnce(ctx context.Context, out io.Writer, opts Options, fn func(context.Context, *console.Console)) (failed bool, err error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return false, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := NewLogger(cfg, opts)
	if err != nil {
		return false, err
	}
	defer func() { _ = logger.Sync() }()

	client, err := NewBackendClient(cfg, opts, logger)
	if err != nil {
		return false, err
	}

	surface := NewPrintSurface(out)
	c := console.New(surface, client, console.Options{Logger: logger})
	defer c.Close()

	logger.Info("one-shot command", zap.String("profile", cfg.ActiveProfile), zap.String("backend", client.BaseURL()))
	fn(ctx, c)

	last, ok := surface.LastToast()
	return ok && last.Severity == console.Error, nil
}
