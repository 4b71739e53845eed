package components

import (
	"github.com/aipros/console/ui/styles"
)

func RenderStatus(status string, busy bool, spinner string, width int) string {
	statusStyle := styles.StatusStyle(width)

	statusContent := status
	if busy && spinner != "" {
		statusContent = spinner + " " + status
	}

	return statusStyle.Render(statusContent)
}

func RenderHeader(profile, backendURL string) string {
	return styles.HeaderStyle().Render("AIPROS") +
		styles.SubtleStyle().Render(" "+profile+" · "+backendURL)
}
