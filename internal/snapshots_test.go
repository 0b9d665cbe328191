package internal

import (
	"os"
	"testing"

	"github.com/hassantayyab/cursor-mobile-chat/testutil"
)

func TestSnapshotStore_SaveLoadRoundtrip(t *testing.T) {
	store := NewSnapshotStore(testutil.CreateTempDir(t))
	result := sampleResult()

	if err := store.Save(result); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(result.Metadata.DatabasePath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned nil for a saved snapshot")
	}
	if !ResultsEqual(result, loaded) {
		t.Error("loaded snapshot differs from what was saved")
	}
	if loaded.Metadata.WorkspaceID != "ws1" {
		t.Errorf("WorkspaceID = %q, want ws1", loaded.Metadata.WorkspaceID)
	}
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := NewSnapshotStore(testutil.CreateTempDir(t))

	loaded, err := store.Load("/never/saved/state.vscdb")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != nil {
		t.Error("Load() of a missing snapshot must return nil, nil")
	}
}

func TestSnapshotStore_IndexTracksSnapshots(t *testing.T) {
	store := NewSnapshotStore(testutil.CreateTempDir(t))
	result := sampleResult()

	if err := store.Save(result); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	index, err := store.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if index.Version != snapshotVersion {
		t.Errorf("Version = %q, want %q", index.Version, snapshotVersion)
	}
	if len(index.Snapshots) != 1 {
		t.Fatalf("index has %d entries, want 1", len(index.Snapshots))
	}
	entry := index.Snapshots[0]
	if entry.DatabasePath != result.Metadata.DatabasePath {
		t.Errorf("DatabasePath = %q, want %q", entry.DatabasePath, result.Metadata.DatabasePath)
	}
	if entry.ThreadCount != 2 || entry.MessageCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", entry.ThreadCount, entry.MessageCount)
	}

	// Saving the same database again replaces its entry instead of appending.
	if err := store.Save(result); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	index, err = store.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if len(index.Snapshots) != 1 {
		t.Errorf("index has %d entries after resave, want 1", len(index.Snapshots))
	}
}

func TestSnapshotStore_Clear(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store := NewSnapshotStore(dir)
	result := sampleResult()

	if err := store.Save(result); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	loaded, err := store.Load(result.Metadata.DatabasePath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != nil {
		t.Error("snapshot survived Clear()")
	}
	if _, err := store.LoadIndex(); !os.IsNotExist(err) {
		t.Errorf("LoadIndex() after Clear() error = %v, want not-exist", err)
	}

	// Clearing an already empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}
