package console

import "time"

type Severity int

const (
	Info Severity = iota
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Toast is a transient notification. A zero Duration keeps the toast on
// screen until it is replaced or cleared.
type Toast struct {
	Message  string
	Severity Severity
	Duration time.Duration
}

func (t Toast) Persistent() bool {
	return t.Duration <= 0
}
