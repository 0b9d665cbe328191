package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// CreateWorkspaceFixture creates a workspaceStorage/<hash> directory with a
// workspace.json pointing at folder, and returns the directory path.
func CreateWorkspaceFixture(t *testing.T, basePath, workspaceHash, folder string) string {
	t.Helper()
	workspaceDir := filepath.Join(basePath, "workspaceStorage", workspaceHash)
	if err := os.MkdirAll(workspaceDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	workspaceJSON := map[string]interface{}{"folder": folder}
	data, _ := json.Marshal(workspaceJSON)
	if err := os.WriteFile(filepath.Join(workspaceDir, "workspace.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write workspace.json: %v", err)
	}

	return workspaceDir
}

// CreateCursorUserFixture builds a Cursor User directory layout with one
// workspace database and one global database, both with empty key-value
// tables. Returns (baseDir, workspaceDBPath, globalDBPath).
func CreateCursorUserFixture(t *testing.T, workspaceHash string) (string, string, string) {
	t.Helper()
	baseDir := CreateTempDir(t)

	workspaceDir := CreateWorkspaceFixture(t, baseDir, workspaceHash, "/path/to/project")
	workspaceDB := filepath.Join(workspaceDir, "state.vscdb")
	CreateStateDB(t, workspaceDB)

	globalDB := filepath.Join(baseDir, "globalStorage", "state.vscdb")
	CreateStateDB(t, globalDB)

	return baseDir, workspaceDB, globalDB
}
