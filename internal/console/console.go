// Package console implements the command console: it sends typed, spoken
// and preset commands to the backend and reports each outcome as a toast.
package console

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aipros/console/internal/backend"
)

// Surface is everything the console draws on.
type Surface interface {
	ToastSurface
	SetInput(text string)
	SetBusy(busy bool)
}

// Backend is the remote command interpreter.
type Backend interface {
	Command(ctx context.Context, text string) (*backend.CommandResponse, error)
	Voice(ctx context.Context) (*backend.VoiceResponse, error)
	Resume(ctx context.Context, choice string, data map[string]any) (*backend.CommandResponse, error)
}

type Options struct {
	Logger    *zap.Logger
	Scheduler Scheduler
}

// Console owns the input, busy indicator and toast of one surface.
// Busy is advisory: the console does not reject a Submit issued while
// another is outstanding.
type Console struct {
	surface Surface
	backend Backend
	toaster *Toaster
	logger  *zap.Logger

	mu      sync.Mutex
	busy    bool
	pending map[string]any // data of the last needs_confirmation reply
	waiting bool
}

func New(surface Surface, be Backend, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		surface: surface,
		backend: be,
		toaster: NewToaster(surface, opts.Scheduler),
		logger:  logger,
	}
}

// Submit sends text as a command. Blank input is ignored. Every other call
// ends with the busy state cleared, the input emptied and one toast shown.
func (c *Console) Submit(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if c.Busy() {
		c.logger.Debug("submit while busy", zap.String("text", text))
	}
	c.setBusy(true)
	resp, err := c.backend.Command(ctx, text)
	c.finish(resp, err)
}

// RunQuickCommand submits a preset label with emoji and punctuation removed.
func (c *Console) RunQuickCommand(ctx context.Context, label string) {
	clean := CleanQuickCommand(label)
	c.surface.SetInput(clean)
	c.Submit(ctx, clean)
}

// StartVoice captures one utterance through the backend and submits the
// transcript.
func (c *Console) StartVoice(ctx context.Context) {
	c.toaster.Show(Toast{Message: msgListening, Severity: Info})

	resp, err := c.backend.Voice(ctx)
	if err != nil {
		c.logger.Warn("voice capture failed", zap.Error(err))
		c.toaster.Show(Toast{Message: msgMicrophone, Severity: Error, Duration: voiceErrorDuration})
		return
	}
	transcript := strings.TrimSpace(resp.SpokenText)
	if !resp.OK() || transcript == "" {
		c.logger.Info("voice capture rejected", zap.String("status", resp.Status), zap.String("message", resp.Message))
		c.toaster.Show(Toast{Message: orDefault(resp.Message, msgVoiceFailed), Severity: Error, Duration: voiceErrorDuration})
		return
	}

	c.surface.SetInput(resp.SpokenText)
	c.Submit(ctx, resp.SpokenText)
}

// Resume answers the last needs_confirmation reply with choice.
func (c *Console) Resume(ctx context.Context, choice string) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return
	}

	c.mu.Lock()
	data, waiting := c.pending, c.waiting
	c.mu.Unlock()
	if !waiting {
		c.toaster.Show(Toast{Message: msgNothingPending, Severity: Error, Duration: errorDuration})
		return
	}

	c.setBusy(true)
	resp, err := c.backend.Resume(ctx, choice, data)
	c.finish(resp, err)
}

// AwaitingConfirmation reports whether the last reply asked the user to
// pick between matches.
func (c *Console) AwaitingConfirmation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

func (c *Console) DismissToast() {
	c.toaster.Clear()
}

func (c *Console) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Close cancels any pending toast dismissal.
func (c *Console) Close() {
	c.toaster.Stop()
}

func (c *Console) finish(resp *backend.CommandResponse, err error) {
	c.setBusy(false)

	var toast Toast
	if err != nil {
		c.logger.Warn("command failed", zap.Error(err))
		toast = Toast{Message: msgUnreachable, Severity: Error, Duration: errorDuration}
	} else {
		toast = Classify(*resp)
		c.remember(*resp)
		c.logger.Info("command answered",
			zap.String("status", resp.Kind()),
			zap.Stringer("severity", toast.Severity))
	}

	c.toaster.Show(toast)
	c.surface.SetInput("")
}

func (c *Console) remember(resp backend.CommandResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if resp.Kind() == StatusNeedsConfirmation {
		c.pending = resp.Data
		c.waiting = true
		return
	}
	c.pending = nil
	c.waiting = false
}

func (c *Console) setBusy(busy bool) {
	c.mu.Lock()
	c.busy = busy
	c.mu.Unlock()
	c.surface.SetBusy(busy)
}
