package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(SubmitEvent{Text: "open calculator"}))
	require.NoError(t, eb.SendToUI(StateUpdateEvent{Busy: true}))

	got := <-eb.UIToCore()
	assert.Equal(t, SubmitEvent{Text: "open calculator"}, got)

	update := (<-eb.CoreToUI()).(StateUpdateEvent)
	assert.True(t, update.Busy)
}

func TestEventBus_SendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(VoiceEvent{}), ErrBusClosed)
	assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrBusClosed)

	_, ok := <-eb.UIToCore()
	assert.False(t, ok)
}

func TestEventBus_FullChannelTripsBreaker(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) { reported = append(reported, err) })

	for i := 0; i < cap(eb.uiToCore); i++ {
		require.NoError(t, eb.SendToCore(DismissToastEvent{}))
	}
	for i := 0; i < 5; i++ {
		assert.Error(t, eb.SendToCore(DismissToastEvent{}))
	}

	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrCircuitOpen)
	assert.Len(t, reported, 6)
	assert.Equal(t, "SendToCore", reported[0].Operation)
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(2, 30*time.Second)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(31 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	// one failure while half-open reopens the circuit
	cb.RecordFailure()
	assert.Equal(t, CircuitOpen, cb.State())

	now = now.Add(31 * time.Second)
	assert.False(t, cb.IsOpen())
	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestEventBus_RejectedSendsDoNotExtendOpenWindow(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	eb.circuitBreaker.now = func() time.Time { return now }
	for i := 0; i < 5; i++ {
		eb.circuitBreaker.RecordFailure()
	}
	require.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())

	for i := 0; i < 10; i++ {
		now = now.Add(3 * time.Second)
		assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrCircuitOpen)
	}

	now = now.Add(1 * time.Second)
	assert.NoError(t, eb.SendToUI(StateUpdateEvent{Busy: false}))
	assert.Equal(t, CircuitClosed, eb.GetCircuitBreakerState())
}
