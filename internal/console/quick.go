package console

import (
	"regexp"
	"strings"
)

// \s is ASCII-only in RE2, so Unicode separators and the BOM are listed
// explicitly.
var nonWordOrSpace = regexp.MustCompile(`[^\w\s\p{Z}\x{FEFF}]`)

// CleanQuickCommand strips emoji and punctuation from a preset label so
// "🔥 Restart Server" is sent as "Restart Server".
func CleanQuickCommand(label string) string {
	return strings.TrimSpace(nonWordOrSpace.ReplaceAllString(label, ""))
}
