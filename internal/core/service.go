package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aipros/console/internal/console"
	"github.com/aipros/console/internal/eventbus"
)

// ConsoleService runs the console behind the event bus. UI events are
// handled one at a time on a single goroutine.
type ConsoleService struct {
	console  *console.Console
	state    *ConsoleState
	eventBus *eventbus.EventBus
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool

	// pushMu keeps snapshots reaching the bus in the order they were taken.
	pushMu sync.Mutex
	resync *time.Timer
}

// resyncInterval is how long to wait before re-sending a snapshot the bus
// refused.
var resyncInterval = 250 * time.Millisecond

type ServiceOptions struct {
	Logger    *zap.Logger
	Scheduler console.Scheduler
}

func NewConsoleService(be console.Backend, eb *eventbus.EventBus, opts ServiceOptions) *ConsoleService {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	service := &ConsoleService{
		state:    NewConsoleState(),
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	service.console = console.New(service, be, console.Options{
		Logger:    logger,
		Scheduler: opts.Scheduler,
	})
	return service
}

// Start runs the core logic in a goroutine
func (cs *ConsoleService) Start() {
	// Send initial state to UI immediately
	cs.pushStateToUI()
	cs.started = true
	go cs.eventLoop()
}

// Stop cancels any in-flight request and waits for the loop to exit.
func (cs *ConsoleService) Stop() {
	cs.cancel()
	cs.console.Close()

	cs.pushMu.Lock()
	if cs.resync != nil {
		cs.resync.Stop()
		cs.resync = nil
	}
	cs.pushMu.Unlock()

	if cs.started {
		<-cs.done
	}
}

func (cs *ConsoleService) Console() *console.Console {
	return cs.console
}

func (cs *ConsoleService) eventLoop() {
	defer close(cs.done)
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ConsoleService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitEvent:
		cs.console.Submit(cs.ctx, e.Text)
	case eventbus.QuickCommandEvent:
		cs.console.RunQuickCommand(cs.ctx, e.Label)
	case eventbus.VoiceEvent:
		cs.console.StartVoice(cs.ctx)
	case eventbus.ResumeEvent:
		cs.console.Resume(cs.ctx, e.Choice)
	case eventbus.DismissToastEvent:
		cs.console.DismissToast()
	default:
		cs.logger.Warn("unhandled UI event", zap.Any("event", event))
		return
	}

	cs.state.SetAwaitingConfirmation(cs.console.AwaitingConfirmation())
	cs.pushStateToUI()
}

// SetInput implements console.Surface.
func (cs *ConsoleService) SetInput(text string) {
	cs.state.SetInput(text)
	cs.pushStateToUI()
}

// SetBusy implements console.Surface.
func (cs *ConsoleService) SetBusy(busy bool) {
	cs.state.SetBusy(busy)
	cs.pushStateToUI()
}

// ShowToast implements console.Surface.
func (cs *ConsoleService) ShowToast(t console.Toast) {
	cs.state.ShowToast(t)
	cs.pushStateToUI()
}

// HideToast implements console.Surface. It may be called from a timer
// goroutine.
func (cs *ConsoleService) HideToast() {
	cs.state.HideToast()
	cs.pushStateToUI()
}

func (cs *ConsoleService) pushStateToUI() {
	cs.pushMu.Lock()
	defer cs.pushMu.Unlock()

	snap := cs.state.Snapshot()

	if err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Input:                snap.Input,
		InputRevision:        snap.InputRevision,
		Busy:                 snap.Busy,
		Toast:                snap.Toast,
		ToastRevision:        snap.ToastRevision,
		AwaitingConfirmation: snap.AwaitingConfirmation,
	}); err != nil {
		cs.logger.Warn("failed to push state to UI", zap.Error(err))
		if !errors.Is(err, eventbus.ErrBusClosed) {
			cs.scheduleResyncLocked()
		}
	}
}

// scheduleResyncLocked re-sends the latest snapshot after resyncInterval.
// Callers hold pushMu.
func (cs *ConsoleService) scheduleResyncLocked() {
	if cs.resync != nil || cs.ctx.Err() != nil {
		return
	}
	cs.resync = time.AfterFunc(resyncInterval, func() {
		cs.pushMu.Lock()
		cs.resync = nil
		cs.pushMu.Unlock()
		if cs.ctx.Err() == nil {
			cs.pushStateToUI()
		}
	})
}
