package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// snapshotVersion guards the on-disk layout. Bump on incompatible changes.
const snapshotVersion = "1.0"

// SnapshotStore persists the previous NormalizationResult per database so a
// later pass can compute an incremental diff. One JSON file per database
// plus a YAML index.
type SnapshotStore struct {
	dir string
}

// SnapshotIndexEntry summarizes one stored snapshot.
type SnapshotIndexEntry struct {
	DatabasePath string `yaml:"database_path"`
	WorkspaceID  string `yaml:"workspace_id"`
	ExtractedAt  int64  `yaml:"extracted_at"`
	ThreadCount  int    `yaml:"thread_count"`
	MessageCount int    `yaml:"message_count"`
}

// SnapshotIndex is the YAML index of all stored snapshots.
type SnapshotIndex struct {
	Version   string               `yaml:"version"`
	UpdatedAt time.Time            `yaml:"updated_at"`
	Snapshots []SnapshotIndexEntry `yaml:"snapshots"`
}

// NewSnapshotStore creates a store rooted at dir.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// Dir returns the store's root directory.
func (s *SnapshotStore) Dir() string { return s.dir }

func (s *SnapshotStore) indexPath() string {
	return filepath.Join(s.dir, "snapshots.yaml")
}

func (s *SnapshotStore) snapshotPath(databasePath string) string {
	// Database paths are not filesystem-safe names; their derived hash is.
	return filepath.Join(s.dir, fmt.Sprintf("snapshot_%s.json", shortHash(databasePath)))
}

// Load returns the stored result for a database path, or nil when no
// snapshot exists yet.
func (s *SnapshotStore) Load(databasePath string) (*NormalizationResult, error) {
	data, err := os.ReadFile(s.snapshotPath(databasePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var result NormalizationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &result, nil
}

// Save stores a result as the new snapshot for its database and updates the
// index.
func (s *SnapshotStore) Save(result *NormalizationResult) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath(result.Metadata.DatabasePath), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return s.updateIndex(result)
}

func (s *SnapshotStore) updateIndex(result *NormalizationResult) error {
	index, err := s.LoadIndex()
	if err != nil {
		index = &SnapshotIndex{Version: snapshotVersion}
	}
	index.UpdatedAt = time.Now()

	entry := SnapshotIndexEntry{
		DatabasePath: result.Metadata.DatabasePath,
		WorkspaceID:  result.Metadata.WorkspaceID,
		ExtractedAt:  result.Metadata.ExtractedAt,
		ThreadCount:  len(result.Threads),
		MessageCount: len(result.Messages),
	}

	found := false
	for i := range index.Snapshots {
		if index.Snapshots[i].DatabasePath == entry.DatabasePath {
			index.Snapshots[i] = entry
			found = true
			break
		}
	}
	if !found {
		index.Snapshots = append(index.Snapshots, entry)
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot index: %w", err)
	}
	return os.WriteFile(s.indexPath(), data, 0644)
}

// LoadIndex loads the snapshot index.
func (s *SnapshotStore) LoadIndex() (*SnapshotIndex, error) {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		return nil, err
	}

	var index SnapshotIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot index: %w", err)
	}
	return &index, nil
}

// Clear removes every stored snapshot and the index.
func (s *SnapshotStore) Clear() error {
	index, err := s.LoadIndex()
	if err == nil {
		for _, entry := range index.Snapshots {
			_ = os.Remove(s.snapshotPath(entry.DatabasePath))
		}
	}

	if err := os.Remove(s.indexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
