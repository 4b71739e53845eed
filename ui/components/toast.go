package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aipros/console/internal/console"
	"github.com/aipros/console/ui/styles"
)

// RenderToast draws the toast slot. Nothing is drawn when it is empty.
func RenderToast(toast *console.Toast, width int) string {
	if toast == nil {
		return ""
	}
	return styles.ToastStyle(toastColor(toast.Severity), width).Render(toast.Message)
}

func toastColor(severity console.Severity) lipgloss.Color {
	switch severity {
	case console.Success:
		return styles.SuccessColor
	case console.Error:
		return styles.ErrorColor
	default:
		return styles.InfoColor
	}
}
