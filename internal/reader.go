package internal

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// KeyValuePair represents one row of the cursorDiskKV table. The value is an
// opaque string; adapters decide how to decode it.
type KeyValuePair struct {
	Key   string
	Value string
}

// sidecarSuffixes are the SQLite companion files that may sit beside a live
// database. Their absence is normal.
var sidecarSuffixes = []string{"-wal", "-shm"}

// SafeReader provides read-only access to a Cursor database without ever
// opening the live file. Open copies the database and its sidecars into a
// fresh temporary directory, checkpoints the write-ahead log into the copy,
// and reads only from that isolated image. This guarantees the pipeline never
// blocks Cursor's writer and never sees a torn page from a concurrent write.
type SafeReader struct {
	sourcePath string
	tempDir    string
	db         *sql.DB
	closed     bool
}

// OpenSafeReader creates an isolated read-only view of the database at path.
// Callers must Close the reader on every exit path; Close is idempotent.
func OpenSafeReader(path string) (*SafeReader, error) {
	tempDir, err := os.MkdirTemp("", "cursor-mobile-chat-*")
	if err != nil {
		return nil, &DatabaseOpenError{Path: path, Op: "copy", Err: err}
	}

	reader := &SafeReader{sourcePath: path, tempDir: tempDir}

	copyPath := filepath.Join(tempDir, filepath.Base(path))
	if err := copyFile(path, copyPath); err != nil {
		reader.cleanup()
		return nil, &DatabaseOpenError{Path: path, Op: "copy", Err: err}
	}

	// Sidecars only exist while Cursor has uncommitted WAL state.
	for _, suffix := range sidecarSuffixes {
		src := path + suffix
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := copyFile(src, copyPath+suffix); err != nil {
			reader.cleanup()
			return nil, &DatabaseOpenError{Path: path, Op: "copy", Err: err}
		}
	}

	if err := checkpointWAL(copyPath); err != nil {
		reader.cleanup()
		return nil, &DatabaseOpenError{Path: path, Op: "checkpoint", Err: err}
	}

	db, err := sql.Open("sqlite", copyPath+"?mode=ro")
	if err != nil {
		reader.cleanup()
		return nil, &DatabaseOpenError{Path: path, Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		reader.cleanup()
		return nil, &DatabaseOpenError{Path: path, Op: "open", Err: err}
	}

	reader.db = db
	return reader, nil
}

// SourcePath returns the path of the original database this reader copied.
func (r *SafeReader) SourcePath() string {
	return r.sourcePath
}

// GetAllEntries returns every key-value row, ordered by key.
func (r *SafeReader) GetAllEntries() ([]KeyValuePair, error) {
	return r.query("SELECT key, value FROM cursorDiskKV WHERE value IS NOT NULL ORDER BY key")
}

// GetEntriesByKeys returns the rows whose keys are in the given set, ordered
// by key.
func (r *SafeReader) GetEntriesByKeys(keys []string) ([]KeyValuePair, error) {
	if len(keys) == 0 {
		return []KeyValuePair{}, nil
	}

	placeholders := strings.Repeat("?,", len(keys))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf("SELECT key, value FROM cursorDiskKV WHERE key IN (%s) AND value IS NOT NULL ORDER BY key", placeholders)

	args := make([]interface{}, len(keys))
	for i, key := range keys {
		args[i] = key
	}
	return r.query(query, args...)
}

// GetEntriesByPrefix returns the rows whose keys start with prefix, ordered
// by key.
func (r *SafeReader) GetEntriesByPrefix(prefix string) ([]KeyValuePair, error) {
	pattern := escapeLike(prefix) + "%"
	return r.query("SELECT key, value FROM cursorDiskKV WHERE key LIKE ? ESCAPE '\\' AND value IS NOT NULL ORDER BY key", pattern)
}

func (r *SafeReader) query(query string, args ...interface{}) ([]KeyValuePair, error) {
	if r.db == nil {
		return nil, &QueryError{Path: r.sourcePath, Err: fmt.Errorf("reader is closed")}
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, &QueryError{Path: r.sourcePath, Err: err}
	}
	defer rows.Close()

	pairs := []KeyValuePair{}
	for rows.Next() {
		var pair KeyValuePair
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			return nil, &QueryError{Path: r.sourcePath, Err: err}
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Path: r.sourcePath, Err: err}
	}

	return pairs, nil
}

// Close releases the read handle and deletes the temporary directory.
// Safe to call more than once.
func (r *SafeReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var closeErr error
	if r.db != nil {
		closeErr = r.db.Close()
		r.db = nil
	}
	r.cleanup()
	return closeErr
}

func (r *SafeReader) cleanup() {
	if r.tempDir != "" {
		_ = os.RemoveAll(r.tempDir)
		r.tempDir = ""
	}
}

// checkpointWAL forces any write-ahead log into the main database image so
// all committed data is visible through a plain table scan.
func checkpointWAL(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database for checkpoint: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("wal checkpoint failed: %w", err)
	}
	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Sync()
}

// escapeLike escapes LIKE wildcards in a literal prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
