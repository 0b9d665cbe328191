package internal

import "strings"

// ExtractCodeBlocks scans message content for fenced regions delimited by
// triple backticks and returns them in source order. The fence's info string
// becomes the language ("text" when absent). An unclosed fence is ignored.
func ExtractCodeBlocks(content string) []CodeBlock {
	var blocks []CodeBlock

	lines := strings.Split(content, "\n")
	inFence := false
	language := ""
	var body []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if !inFence {
				inFence = true
				language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				if language == "" {
					language = "text"
				}
				body = body[:0]
				continue
			}

			blocks = append(blocks, CodeBlock{
				Language: language,
				Content:  strings.TrimSpace(strings.Join(body, "\n")),
			})
			inFence = false
			continue
		}

		if inFence {
			body = append(body, line)
		}
	}

	return blocks
}
