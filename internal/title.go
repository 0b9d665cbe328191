package internal

import "strings"

const (
	titleMaxLength   = 60
	titlePlaceholder = "Untitled Conversation"
)

// DeriveTitle returns a display title for a thread. An explicit non-empty
// title wins; otherwise the title is derived from the first message content:
// the first line stripped of leading markup, skipping fence openers (up to 4
// lines ahead), truncated to 60 characters. Falls back to a placeholder when
// nothing usable remains.
func DeriveTitle(explicit, firstMessage string) string {
	if title := strings.TrimSpace(explicit); title != "" {
		return truncateTitle(title)
	}

	lines := strings.Split(firstMessage, "\n")
	for i := 0; i < len(lines) && i < 5; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimLeft(line, "#*>- \t")
		if line == "" {
			continue
		}
		return truncateTitle(line)
	}

	return titlePlaceholder
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleMaxLength {
		return title
	}
	return string(runes[:titleMaxLength]) + "..."
}
