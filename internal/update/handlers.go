package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aipros/console/internal/dispatcher"
	"github.com/aipros/console/internal/eventbus"
	"github.com/aipros/console/internal/models"
)

const maxQuickCommands = 9

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	key := keyMsg.String()

	switch key {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if appModel.Toast != nil {
			send(appModel, eb, eventbus.DismissToastEvent{})
		}
		return nil
	}

	if appModel.Busy {
		// Controls are disabled while a command is outstanding.
		return nil
	}

	switch key {
	case "enter":
		text := appModel.Input.Value()
		if strings.TrimSpace(text) == "" {
			return nil
		}
		if send(appModel, eb, eventbus.SubmitEvent{Text: text}) {
			markBusy(appModel)
		}
		return nil
	case "ctrl+r":
		send(appModel, eb, eventbus.VoiceEvent{})
		return nil
	case "ctrl+y":
		choice := appModel.Input.Value()
		if strings.TrimSpace(choice) == "" {
			return nil
		}
		if send(appModel, eb, eventbus.ResumeEvent{Choice: choice}) {
			markBusy(appModel)
		}
		return nil
	}

	if label, ok := quickCommandForKey(appModel.QuickCommands, key); ok {
		if send(appModel, eb, eventbus.QuickCommandEvent{Label: label}) {
			markBusy(appModel)
		}
		return nil
	}

	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	return cmd
}

// quickCommandForKey maps alt+N to the Nth preset label.
func quickCommandForKey(labels []string, key string) (string, bool) {
	digit, found := strings.CutPrefix(key, "alt+")
	if !found || len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return "", false
	}
	idx := int(digit[0] - '1')
	if idx >= len(labels) || idx >= maxQuickCommands {
		return "", false
	}
	return labels[idx], true
}

func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) bool {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending command: " + err.Error()
		return false
	}
	return true
}

// markBusy disables the input until the core reports the outcome. The core
// re-sends its latest state until the bus accepts it.
func markBusy(appModel *models.AppModel) {
	appModel.Busy = true
	appModel.Input.Blur()
	appModel.Status = models.StatusThinking
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	event, ok := coreEventMsg.Event.(eventbus.StateUpdateEvent)
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	if event.InputRevision != appModel.InputRevision {
		appModel.InputRevision = event.InputRevision
		appModel.Input.SetValue(event.Input)
		appModel.Input.CursorEnd()
	}

	appModel.Busy = event.Busy
	if event.Busy {
		appModel.Input.Blur()
	} else if !appModel.Input.Focused() {
		cmd = appModel.Input.Focus()
	}

	appModel.Toast = event.Toast
	appModel.AwaitingConfirmation = event.AwaitingConfirmation

	switch {
	case event.Busy:
		appModel.Status = models.StatusThinking
	case event.AwaitingConfirmation:
		appModel.Status = models.StatusConfirm
	default:
		appModel.Status = models.StatusReady
	}

	return cmd
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	if sizeMsg.Width > 8 {
		appModel.Input.Width = sizeMsg.Width - 8
	}
}
