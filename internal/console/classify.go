package console

import (
	"time"

	"github.com/aipros/console/internal/backend"
)

// Status values returned by the command backend.
const (
	StatusChat              = "chat"
	StatusChain             = "chain"
	StatusSuccess           = "success"
	StatusNeedsConfirmation = "needs_confirmation"
	StatusError             = "error"
)

const (
	chainDuration        = 8000 * time.Millisecond
	successDuration      = 6000 * time.Millisecond
	confirmationDuration = 8000 * time.Millisecond
	errorDuration        = 2800 * time.Millisecond
	voiceErrorDuration   = 3000 * time.Millisecond
)

const (
	fallbackChat         = "No response from model."
	fallbackChain        = "Multiple actions queued. Run them one by one."
	fallbackSuccess      = "Command executed successfully"
	fallbackConfirmation = "Multiple matches found. Please be more specific."
	fallbackError        = "Execution failed"

	msgUnreachable    = "Backend not reachable"
	msgListening      = "Listening… Speak now"
	msgMicrophone     = "Microphone error"
	msgVoiceFailed    = "Voice failed"
	msgNothingPending = "Nothing to confirm"
)

// Classify maps a backend reply to the toast that reports it. Unknown
// statuses are shown as errors.
func Classify(resp backend.CommandResponse) Toast {
	switch resp.Kind() {
	case StatusChat:
		return Toast{Message: orDefault(resp.Message, fallbackChat), Severity: Info}
	case StatusChain:
		return Toast{Message: orDefault(resp.Message, fallbackChain), Severity: Info, Duration: chainDuration}
	case StatusSuccess:
		return Toast{Message: orDefault(resp.Message, fallbackSuccess), Severity: Success, Duration: successDuration}
	case StatusNeedsConfirmation:
		return Toast{Message: orDefault(resp.Message, fallbackConfirmation), Severity: Info, Duration: confirmationDuration}
	default:
		return Toast{Message: orDefault(resp.Message, fallbackError), Severity: Error, Duration: errorDuration}
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
