package export

import (
	"fmt"
	"io"
	"time"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
)

// MarkdownExporter exports results in Markdown format, one section per
// thread with its messages inline.
type MarkdownExporter struct{}

// Export writes a result as a readable Markdown document.
func (e *MarkdownExporter) Export(result *internal.NormalizationResult, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", result.Metadata.DatabasePath)
	_, _ = fmt.Fprintf(w, "**Workspace:** %s  \n", result.Metadata.WorkspaceID)
	_, _ = fmt.Fprintf(w, "**Threads:** %d  \n", len(result.Threads))
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(result.Messages))

	byThread := make(map[string][]internal.Message)
	for _, msg := range result.Messages {
		byThread[msg.ThreadID] = append(byThread[msg.ThreadID], msg)
	}

	for _, thread := range result.Threads {
		title := thread.Title
		if title == "" {
			title = thread.ID
		}
		_, _ = fmt.Fprintf(w, "## %s\n\n", title)
		if thread.WorkspaceName != "" {
			_, _ = fmt.Fprintf(w, "**Workspace:** %s  \n", thread.WorkspaceName)
		}
		_, _ = fmt.Fprintf(w, "**Updated:** %s\n\n", formatMillis(thread.UpdatedAt))

		for i, msg := range byThread[thread.ID] {
			timestamp := ""
			if msg.Timestamp > 0 {
				timestamp = fmt.Sprintf(" (%s)", formatMillis(msg.Timestamp))
			}
			_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, msg.Content)

			if i < len(byThread[thread.ID])-1 {
				_, _ = fmt.Fprintf(w, "---\n\n")
			}
		}
	}

	return nil
}

func formatMillis(ts int64) string {
	return time.Unix(0, ts*int64(time.Millisecond)).UTC().Format(time.RFC3339)
}

// Extension returns the file extension for this format.
func (e *MarkdownExporter) Extension() string {
	return "md"
}
