package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
)

// JSONLExporter exports results in JSONL format: one thread or message
// record per line, tagged with a kind field.
type JSONLExporter struct{}

// Export writes every thread, then every message, one JSON object per line.
func (e *JSONLExporter) Export(result *internal.NormalizationResult, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, thread := range result.Threads {
		obj := map[string]interface{}{
			"kind":   "thread",
			"thread": thread,
		}
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode thread: %w", err)
		}
	}

	for _, msg := range result.Messages {
		obj := map[string]interface{}{
			"kind":    "message",
			"message": msg,
		}
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format.
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
