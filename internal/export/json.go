package export

import (
	"encoding/json"
	"io"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
)

// JSONExporter exports results in JSON format (pretty-printed).
type JSONExporter struct{}

// Export writes a result as indented JSON.
func (e *JSONExporter) Export(result *internal.NormalizationResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// Extension returns the file extension for this format.
func (e *JSONExporter) Extension() string {
	return "json"
}
