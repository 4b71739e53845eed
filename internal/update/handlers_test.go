package update

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aipros/console/internal/console"
	"github.com/aipros/console/internal/dispatcher"
	"github.com/aipros/console/internal/eventbus"
	"github.com/aipros/console/internal/models"
)

func newModel() models.AppModel {
	return models.NewAppModel("default", "http://127.0.0.1:8000", []string{"🔥 Restart Server", "📂 Open Downloads"})
}

func typeText(m *models.AppModel, eb *eventbus.EventBus, text string) {
	for _, r := range text {
		HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, eb)
	}
}

func drain(eb *eventbus.EventBus) []eventbus.UIEvent {
	var events []eventbus.UIEvent
	for {
		select {
		case ev := <-eb.UIToCore():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestEnterSubmitsInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	typeText(&m, eb, "open calculator")
	assert.Equal(t, "open calculator", m.Input.Value())

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	assert.Equal(t, []eventbus.UIEvent{eventbus.SubmitEvent{Text: "open calculator"}}, drain(eb))
	assert.True(t, m.Busy)
	assert.False(t, m.Input.Focused())
	assert.Equal(t, models.StatusThinking, m.Status)
}

func TestEnterIgnoresBlankInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	typeText(&m, eb, "   ")
	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	assert.Empty(t, drain(eb))
	assert.False(t, m.Busy)
}

func TestControlsDisabledWhileBusy(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()
	m.Input.SetValue("open calculator")
	m.Busy = true

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyEnter}, eb)
	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyCtrlR}, eb)
	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true}, eb)

	assert.Empty(t, drain(eb))
}

func TestQuickCommandKeys(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true}, eb)
	assert.Equal(t, []eventbus.UIEvent{eventbus.QuickCommandEvent{Label: "📂 Open Downloads"}}, drain(eb))

	m.Busy = false
	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}, Alt: true}, eb)
	assert.Empty(t, drain(eb), "no preset bound to alt+9")
}

func TestQuickCommandForKey(t *testing.T) {
	labels := []string{"a", "b"}

	label, ok := quickCommandForKey(labels, "alt+1")
	require.True(t, ok)
	assert.Equal(t, "a", label)

	for _, key := range []string{"alt+0", "alt+3", "alt+x", "1", "ctrl+1", "alt+12"} {
		_, ok := quickCommandForKey(labels, key)
		assert.False(t, ok, key)
	}
}

func TestVoiceAndDismissKeys(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyCtrlR}, eb)
	assert.Equal(t, []eventbus.UIEvent{eventbus.VoiceEvent{}}, drain(eb))
	assert.False(t, m.Busy, "voice capture does not lock the input")

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyEsc}, eb)
	assert.Empty(t, drain(eb), "nothing to dismiss")

	m.Toast = &console.Toast{Message: "Hi"}
	m.Busy = true
	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyEsc}, eb)
	assert.Equal(t, []eventbus.UIEvent{eventbus.DismissToastEvent{}}, drain(eb))
}

func TestResumeKey(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()
	m.Input.SetValue("Projects")

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyCtrlY}, eb)

	assert.Equal(t, []eventbus.UIEvent{eventbus.ResumeEvent{Choice: "Projects"}}, drain(eb))
	assert.True(t, m.Busy)
}

func TestSendFailureShowsStatus(t *testing.T) {
	eb := eventbus.NewEventBus()
	eb.Close()
	m := newModel()
	m.Input.SetValue("open calculator")

	HandleKeyMsgWithEventBus(&m, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	assert.False(t, m.Busy)
	assert.Contains(t, m.Status, "Error sending command")
}

func TestHandleCoreEvent(t *testing.T) {
	m := newModel()
	m.Input.SetValue("typed during capture")

	// same input revision: local text is kept
	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{Busy: true}})
	assert.Equal(t, "typed during capture", m.Input.Value())
	assert.True(t, m.Busy)
	assert.False(t, m.Input.Focused())
	assert.Equal(t, models.StatusThinking, m.Status)

	toast := &console.Toast{Message: "Done", Severity: console.Success, Duration: 6 * time.Second}
	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Input:         "",
		InputRevision: 1,
		Toast:         toast,
		ToastRevision: 1,
	}})
	assert.Equal(t, "", m.Input.Value())
	assert.False(t, m.Busy)
	assert.True(t, m.Input.Focused())
	assert.Equal(t, toast, m.Toast)
	assert.Equal(t, models.StatusReady, m.Status)

	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{InputRevision: 1, AwaitingConfirmation: true}})
	assert.Equal(t, models.StatusConfirm, m.Status)
	assert.Nil(t, m.Toast)
}

func TestHandleWindowSize(t *testing.T) {
	m := newModel()
	HandleUpdateWithEventBus(&m, tea.WindowSizeMsg{Width: 100, Height: 30}, nil)

	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 30, m.Height)
	assert.Equal(t, 92, m.Input.Width)
}
