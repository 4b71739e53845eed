package styles

import "github.com/charmbracelet/lipgloss"

// Toast backgrounds.
var (
	InfoColor    = lipgloss.Color("#141824")
	SuccessColor = lipgloss.Color("#00B478")
	ErrorColor   = lipgloss.Color("#DC5050")
	ToastText    = lipgloss.Color("#FFFFFF")
)

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(max(width-4, 10))
}

// DisabledInputStyle is the input while a command is outstanding.
func DisabledInputStyle(width int) lipgloss.Style {
	return InputStyle(width).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("240"))
}

func StatusStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style
}

func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1)
}

func SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
}

func EchoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 1)
}

func QuickKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
}

func ToastStyle(background lipgloss.Color, width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(ToastText).
		Background(background).
		Padding(0, 2).
		MarginLeft(2)
	if width > 8 {
		style = style.MaxWidth(width - 4).Width(width - 8)
	}
	return style
}
