package console

import (
	"sync"
	"time"
)

// ToastSurface renders the single toast slot.
type ToastSurface interface {
	ShowToast(t Toast)
	HideToast()
}

// Timer is the handle of a scheduled dismissal.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Timer

func realScheduler(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Toaster shows one toast at a time. Showing a new toast cancels the
// pending dismissal of the previous one.
type Toaster struct {
	mu       sync.Mutex
	surface  ToastSurface
	schedule Scheduler
	timer    Timer
	seq      uint64
	current  *Toast
}

func NewToaster(surface ToastSurface, schedule Scheduler) *Toaster {
	if schedule == nil {
		schedule = realScheduler
	}
	return &Toaster{surface: surface, schedule: schedule}
}

func (t *Toaster) Show(toast Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.seq++
	t.current = &toast
	t.surface.ShowToast(toast)

	if toast.Persistent() {
		return
	}
	seq := t.seq
	t.timer = t.schedule(toast.Duration, func() { t.expire(seq) })
}

// Clear hides the current toast immediately.
func (t *Toaster) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.seq++
	if t.current == nil {
		return
	}
	t.current = nil
	t.surface.HideToast()
}

// Current returns the toast on screen, if any.
func (t *Toaster) Current() (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Toast{}, false
	}
	return *t.current, true
}

// Stop cancels the pending dismissal without touching the surface.
func (t *Toaster) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.seq++
}

func (t *Toaster) expire(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A newer toast may have been shown after this timer already fired.
	if seq != t.seq {
		return
	}
	t.timer = nil
	t.current = nil
	t.surface.HideToast()
}

func (t *Toaster) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
