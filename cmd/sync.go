package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
	"github.com/spf13/cobra"
)

var (
	syncSnapshotDir string
	syncDryRun      bool
)

// syncPayload is the incremental payload emitted per changed database.
type syncPayload struct {
	DatabasePath string         `json:"databasePath"`
	WorkspaceID  string         `json:"workspaceId"`
	Diff         *internal.Diff `json:"diff"`
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Diff the current state against the previous run",
	Long: `Normalize every discovered database, diff each result against the
snapshot stored by the previous run, emit the incremental changes as JSON,
and update the snapshots. Databases without changes are omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger()

		snapshotDir := cfg.SnapshotDir
		if syncSnapshotDir != "" {
			snapshotDir = syncSnapshotDir
		}
		if snapshotDir == "" {
			return fmt.Errorf("no snapshot directory configured")
		}
		store := internal.NewSnapshotStore(snapshotDir)

		normalizer := internal.NewNormalizer(cfg, logger)
		results, err := normalizer.NormalizeAllDatabases()
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		changed := 0
		for _, result := range results {
			previous, err := store.Load(result.Metadata.DatabasePath)
			if err != nil {
				logger.Warnf("ignoring unreadable snapshot for %s: %v", result.Metadata.DatabasePath, err)
			}

			if previous != nil && internal.ResultsEqual(previous, result) {
				continue
			}

			diff := internal.ComputeDiff(previous, result)
			if diff.Empty() {
				continue
			}
			changed++

			payload := syncPayload{
				DatabasePath: result.Metadata.DatabasePath,
				WorkspaceID:  result.Metadata.WorkspaceID,
				Diff:         diff,
			}
			if err := enc.Encode(payload); err != nil {
				return fmt.Errorf("failed to encode diff: %w", err)
			}

			if !syncDryRun {
				if err := store.Save(result); err != nil {
					logger.Errorf("failed to save snapshot for %s: %v", result.Metadata.DatabasePath, err)
				}
			}
		}

		logger.Infof("%d of %d database(s) changed since last run", changed, len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&syncSnapshotDir, "snapshot-dir", "", "Directory for stored snapshots (defaults to config)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute diffs without updating snapshots")
}
