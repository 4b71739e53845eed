package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/aipros/console/internal/console"
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Input                textinput.Model // Command line
	InputRevision        uint64          // Last core input revision applied
	Spinner              spinner.Model   // Thinking indicator
	Busy                 bool            // A command is outstanding
	Toast                *console.Toast  // Toast on screen, nil when hidden
	AwaitingConfirmation bool            // Last reply was needs_confirmation
	Status               string          // Status bar text
	Profile              string          // Active profile name
	BackendURL           string          // Backend the console talks to
	QuickCommands        []string        // Preset labels, bound to alt+1..9
	Width                int             // Terminal width
	Height               int             // Terminal height
}

const (
	StatusReady    = "Ready"
	StatusThinking = "AIPROS is thinking…"
	StatusConfirm  = "Type your choice and press ctrl+y"
)

// NewAppModel creates the initial UI state.
func NewAppModel(profile, backendURL string, quickCommands []string) AppModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type or speak a command…"
	ti.CharLimit = 2048
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return AppModel{
		Input:         ti,
		Spinner:       sp,
		Status:        StatusReady,
		Profile:       profile,
		BackendURL:    backendURL,
		QuickCommands: quickCommands,
		Width:         80,
	}
}
