package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/aipros/console/internal/console"
)

var (
	ErrBusClosed   = errors.New("event bus is closed")
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SubmitEvent - UI submits the input line as a command
type SubmitEvent struct {
	Text string
}

func (e SubmitEvent) UIEvent() {}

// QuickCommandEvent - UI triggered a preset command
type QuickCommandEvent struct {
	Label string
}

func (e QuickCommandEvent) UIEvent() {}

// VoiceEvent - UI asks for one voice capture
type VoiceEvent struct{}

func (e VoiceEvent) UIEvent() {}

// ResumeEvent - UI answers a needs_confirmation reply
type ResumeEvent struct {
	Choice string
}

func (e ResumeEvent) UIEvent() {}

// DismissToastEvent - UI asks to clear the toast
type DismissToastEvent struct{}

func (e DismissToastEvent) UIEvent() {}

// StateUpdateEvent - Core pushes console state to UI.
// Input is only meant to be applied when InputRevision changed.
type StateUpdateEvent struct {
	Input                string
	InputRevision        uint64
	Busy                 bool
	Toast                *console.Toast
	ToastRevision        uint64
	AwaitingConfirmation bool
}

func (e StateUpdateEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker implements circuit breaker pattern
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures || cb.state == CircuitHalfOpen {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	mu             sync.RWMutex
	closed         bool
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, 100),
		coreToUI:       make(chan CoreEvent, 100),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	// Rejections by an open breaker do not extend its open window.
	if !errors.Is(err, ErrCircuitOpen) {
		eb.circuitBreaker.RecordFailure()
	}

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("SendToCore", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("UI to Core channel is full")
		eb.reportError("SendToCore", err)
		return err
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("SendToUI", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("Core to UI channel is full")
		eb.reportError("SendToUI", err)
		return err
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

// Close closes both channels. Later sends return ErrBusClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
