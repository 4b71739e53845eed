package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aipros/console/internal/dispatcher"
	"github.com/aipros/console/internal/models"
	"github.com/aipros/console/internal/update"
	"github.com/aipros/console/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.appModel.Spinner.Tick,
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	// Handle other events through the event bus
	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.appModel.Profile, m.appModel.BackendURL))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(m.appModel.Input.View(), m.appModel.Busy, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderQuickCommands(m.appModel.QuickCommands, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderToast(m.appModel.Toast, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Busy, m.appModel.Spinner.View(), m.appModel.Width))

	return b.String()
}
