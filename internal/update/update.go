package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aipros/console/internal/dispatcher"
	"github.com/aipros/console/internal/eventbus"
	"github.com/aipros/console/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		appModel.Spinner, cmd = appModel.Spinner.Update(msg)
		return cmd
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}

	// Cursor blink and other textinput internals
	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(msg)
	return cmd
}
