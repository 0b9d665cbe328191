package internal

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// DatabaseFilename is the fixed name Cursor uses for its key-value stores.
	DatabaseFilename = "state.vscdb"

	// GlobalWorkspaceID is the sentinel workspace id for the shared
	// globalStorage database.
	GlobalWorkspaceID = "_global_"
)

// cursorUserDir returns the platform-specific Cursor User directory.
func cursorUserDir(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Cursor", "User"), nil
	case "linux":
		return filepath.Join(home, ".config", "Cursor", "User"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Cursor", "User"), nil
	default:
		return "", &UnsupportedPlatformError{OS: goos}
	}
}

// FindDatabases locates every state.vscdb under the current platform's
// Cursor storage: one per workspace plus the global store. A missing Cursor
// installation yields an empty slice, not an error.
func FindDatabases() ([]string, error) {
	baseDir, err := cursorUserDir(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	return findDatabasesIn(baseDir), nil
}

// FindDatabasesUnder enumerates databases under an explicit Cursor User
// directory, bypassing platform detection.
func FindDatabasesUnder(baseDir string) []string {
	return findDatabasesIn(baseDir)
}

// findDatabasesIn enumerates databases under one Cursor User directory.
func findDatabasesIn(baseDir string) []string {
	databases := []string{}

	workspaceStorage := filepath.Join(baseDir, "workspaceStorage")
	_ = filepath.WalkDir(workspaceStorage, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == DatabaseFilename {
			databases = append(databases, path)
		}
		return nil
	})

	globalDB := filepath.Join(baseDir, "globalStorage", DatabaseFilename)
	if info, err := os.Stat(globalDB); err == nil && !info.IsDir() {
		databases = append(databases, globalDB)
	}

	return databases
}

// WorkspaceIDForPath derives a workspace identifier from a database path.
// Paths under globalStorage map to GlobalWorkspaceID; paths under
// workspaceStorage map to their hash directory segment. The second return
// value is false when neither pattern matches, and callers should fall back
// to "unknown" rather than fail.
func WorkspaceIDForPath(path string) (string, bool) {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, segment := range segments {
		switch segment {
		case "globalStorage":
			return GlobalWorkspaceID, true
		case "workspaceStorage":
			if i+1 < len(segments) {
				id := segments[i+1]
				if id != "" && id != DatabaseFilename {
					return id, true
				}
			}
			return "", false
		}
	}
	return "", false
}

// WorkspaceNameForPath resolves a human-readable workspace name by reading
// the workspace.json stored beside a workspaceStorage database. Returns ""
// when no name is available.
func WorkspaceNameForPath(path string) string {
	dir := filepath.Dir(path)
	data, err := os.ReadFile(filepath.Join(dir, "workspace.json"))
	if err != nil {
		return ""
	}

	var workspaceData struct {
		Folder string `json:"folder"`
	}
	if err := json.Unmarshal(data, &workspaceData); err != nil {
		return ""
	}
	if workspaceData.Folder == "" {
		return ""
	}

	folder := strings.TrimPrefix(workspaceData.Folder, "file://")
	return filepath.Base(folder)
}
