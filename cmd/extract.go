package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
	"github.com/hassantayyab/cursor-mobile-chat/internal/export"
	"github.com/spf13/cobra"
)

var (
	extractFormat string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Normalize every discovered database",
	Long: `Run the full extraction pipeline over every discovered database and
write the normalized results to stdout or a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger()

		normalizer := internal.NewNormalizer(cfg, logger)
		results, err := normalizer.NormalizeAllDatabases()
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}

		exporter, err := export.NewExporter(extractFormat)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if extractOutput != "" {
			f, err := os.Create(extractOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			w = f
		}

		threads, messages := 0, 0
		for _, result := range results {
			if err := exporter.Export(result, w); err != nil {
				return fmt.Errorf("failed to export %s: %w", result.Metadata.DatabasePath, err)
			}
			threads += len(result.Threads)
			messages += len(result.Messages)
		}

		logger.Infof("extracted %d thread(s), %d message(s) from %d database(s)", threads, messages, len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "Output format (json, jsonl, yaml, md)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write output to a file instead of stdout")
}
