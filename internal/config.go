package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls adapter precedence and retention limits for a
// normalization pass. Zero limits mean unlimited.
type Config struct {
	// PreferModern makes composer-format output authoritative: the legacy
	// adapter only runs when the modern adapter yields nothing.
	PreferModern bool `yaml:"prefer_modern"`

	// MaxThreadsPerDatabase keeps only the N most recently updated threads
	// per database. 0 disables the limit.
	MaxThreadsPerDatabase int `yaml:"max_threads_per_database"`

	// MaxMessagesPerThread truncates each thread to its N oldest messages
	// after sorting by timestamp. 0 disables the limit.
	MaxMessagesPerThread int `yaml:"max_messages_per_thread"`

	// StoragePath overrides platform detection with an explicit Cursor User
	// directory. Empty means auto-detect.
	StoragePath string `yaml:"storage_path,omitempty"`

	// SnapshotDir is where previous extraction results are kept for diffing.
	SnapshotDir string `yaml:"snapshot_dir,omitempty"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	snapshotDir := ""
	if err == nil {
		snapshotDir = filepath.Join(home, ".cursor-mobile-chat", "snapshots")
	}
	return Config{
		PreferModern: true,
		SnapshotDir:  snapshotDir,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.MaxThreadsPerDatabase < 0 {
		return cfg, fmt.Errorf("max_threads_per_database must not be negative")
	}
	if cfg.MaxMessagesPerThread < 0 {
		return cfg, fmt.Errorf("max_messages_per_thread must not be negative")
	}

	return cfg, nil
}
