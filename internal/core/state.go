package core

import (
	"sync"

	"github.com/aipros/console/internal/console"
)

// ConsoleState is the core's copy of what the UI should show.
type ConsoleState struct {
	mu            sync.RWMutex
	input         string
	inputRevision uint64
	busy          bool
	toast         *console.Toast
	toastRevision uint64
	awaiting      bool
}

func NewConsoleState() *ConsoleState {
	return &ConsoleState{}
}

func (cs *ConsoleState) SetInput(text string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.input = text
	cs.inputRevision++
}

func (cs *ConsoleState) SetBusy(busy bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.busy = busy
}

func (cs *ConsoleState) IsBusy() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.busy
}

func (cs *ConsoleState) ShowToast(t console.Toast) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.toast = &t
	cs.toastRevision++
}

func (cs *ConsoleState) HideToast() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.toast = nil
	cs.toastRevision++
}

func (cs *ConsoleState) SetAwaitingConfirmation(awaiting bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.awaiting = awaiting
}

// Snapshot is a consistent copy of the state.
type Snapshot struct {
	Input                string
	InputRevision        uint64
	Busy                 bool
	Toast                *console.Toast
	ToastRevision        uint64
	AwaitingConfirmation bool
}

func (cs *ConsoleState) Snapshot() Snapshot {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var toast *console.Toast
	if cs.toast != nil {
		t := *cs.toast
		toast = &t
	}
	return Snapshot{
		Input:                cs.input,
		InputRevision:        cs.inputRevision,
		Busy:                 cs.busy,
		Toast:                toast,
		ToastRevision:        cs.toastRevision,
		AwaitingConfirmation: cs.awaiting,
	}
}
