package internal

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hassantayyab/cursor-mobile-chat/testutil"
)

func TestFindDatabasesIn(t *testing.T) {
	baseDir, workspaceDB, globalDB := testutil.CreateCursorUserFixture(t, "abc123hash")

	databases := findDatabasesIn(baseDir)
	if len(databases) != 2 {
		t.Fatalf("findDatabasesIn() returned %d databases, want 2", len(databases))
	}

	found := make(map[string]bool)
	for _, db := range databases {
		found[db] = true
	}
	if !found[workspaceDB] {
		t.Errorf("findDatabasesIn() missing workspace database %s", workspaceDB)
	}
	if !found[globalDB] {
		t.Errorf("findDatabasesIn() missing global database %s", globalDB)
	}
}

func TestFindDatabasesIn_MissingBaseDir(t *testing.T) {
	databases := findDatabasesIn("/nonexistent/cursor/user")
	if len(databases) != 0 {
		t.Errorf("findDatabasesIn() returned %d databases for missing dir, want 0", len(databases))
	}
}

func TestCursorUserDir_UnsupportedPlatform(t *testing.T) {
	_, err := cursorUserDir("plan9")
	if err == nil {
		t.Fatal("cursorUserDir() should return error for unknown platform")
	}

	var platformErr *UnsupportedPlatformError
	if !errors.As(err, &platformErr) {
		t.Errorf("cursorUserDir() error = %T, want *UnsupportedPlatformError", err)
	}
}

func TestCursorUserDir_KnownPlatforms(t *testing.T) {
	for _, goos := range []string{"darwin", "linux", "windows"} {
		dir, err := cursorUserDir(goos)
		if err != nil {
			t.Errorf("cursorUserDir(%q) error = %v", goos, err)
			continue
		}
		if !strings.Contains(dir, "Cursor") {
			t.Errorf("cursorUserDir(%q) = %q, want a Cursor path", goos, dir)
		}
	}
}

func TestWorkspaceIDForPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		wantID string
		wantOK bool
	}{
		{
			name:   "workspace database",
			path:   filepath.Join("home", "Cursor", "User", "workspaceStorage", "abc123", "state.vscdb"),
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "global database",
			path:   filepath.Join("home", "Cursor", "User", "globalStorage", "state.vscdb"),
			wantID: GlobalWorkspaceID,
			wantOK: true,
		},
		{
			name:   "unrelated path",
			path:   filepath.Join("tmp", "some", "state.vscdb"),
			wantID: "",
			wantOK: false,
		},
		{
			name:   "workspaceStorage with no hash segment",
			path:   filepath.Join("Cursor", "workspaceStorage", "state.vscdb"),
			wantID: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := WorkspaceIDForPath(tt.path)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("WorkspaceIDForPath(%q) = (%q, %v), want (%q, %v)", tt.path, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestWorkspaceNameForPath(t *testing.T) {
	baseDir := testutil.CreateTempDir(t)
	workspaceDir := testutil.CreateWorkspaceFixture(t, baseDir, "hash1", "/home/dev/myproject")

	name := WorkspaceNameForPath(filepath.Join(workspaceDir, "state.vscdb"))
	if name != "myproject" {
		t.Errorf("WorkspaceNameForPath() = %q, want %q", name, "myproject")
	}
}

func TestWorkspaceNameForPath_Missing(t *testing.T) {
	if name := WorkspaceNameForPath("/nonexistent/state.vscdb"); name != "" {
		t.Errorf("WorkspaceNameForPath() = %q, want empty", name)
	}
}
