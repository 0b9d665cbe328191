package export

import (
	"io"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports results in YAML format.
type YAMLExporter struct{}

// Export writes a result as YAML.
func (e *YAMLExporter) Export(result *internal.NormalizationResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(result)
}

// Extension returns the file extension for this format.
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
