package components

import (
	"fmt"
	"strings"

	"github.com/aipros/console/ui/styles"
)

const maxQuickCommands = 9

// RenderQuickCommands lists the presets with their alt+N keys, followed by
// the other key bindings.
func RenderQuickCommands(labels []string, width int) string {
	var parts []string
	for i, label := range labels {
		if i >= maxQuickCommands {
			break
		}
		parts = append(parts, styles.QuickKeyStyle().Render(fmt.Sprintf("alt+%d", i+1))+" "+label)
	}
	parts = append(parts, styles.SubtleStyle().Render("ctrl+r mic · ctrl+y confirm · esc dismiss · ctrl+c quit"))

	line := strings.Join(parts, "   ")
	if width > 0 {
		return styles.SubtleStyle().Width(width).Render(line)
	}
	return line
}
