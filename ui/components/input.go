package components

import (
	"github.com/aipros/console/ui/styles"
)

func RenderInput(input string, busy bool, width int) string {
	if busy {
		return styles.DisabledInputStyle(width).Render(input)
	}
	return styles.InputStyle(width).Render(input)
}

// RenderEcho shows a command as it is sent.
func RenderEcho(text string) string {
	return styles.EchoStyle().Render(text)
}
