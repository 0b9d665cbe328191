package internal

import "time"

// Thread represents one normalized conversation extracted from a Cursor
// database. IDs are derived hashes, stable across repeated extractions of
// unchanged data (see identity.go).
type Thread struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title,omitempty"`
	WorkspaceID   string                 `json:"workspaceId,omitempty"`
	WorkspaceName string                 `json:"workspaceName,omitempty"`
	CreatedAt     int64                  `json:"createdAt"`
	UpdatedAt     int64                  `json:"updatedAt"`
	MessageCount  int                    `json:"messageCount"`
	LastMessage   string                 `json:"lastMessage,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// Message represents one turn within a thread.
type Message struct {
	ID         string                 `json:"id"`
	ThreadID   string                 `json:"threadId"`
	Role       string                 `json:"role"` // "user", "assistant", "system", "tool"
	Content    string                 `json:"content"`
	Timestamp  int64                  `json:"timestamp"`
	CodeBlocks []CodeBlock            `json:"codeBlocks,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// CodeBlock represents a fenced code region extracted from message content.
type CodeBlock struct {
	Language string `json:"language"`
	Content  string `json:"content"`
	Filename string `json:"filename,omitempty"`
}

// ResultMetadata describes one extraction pass over a single database.
type ResultMetadata struct {
	DatabasePath  string   `json:"databasePath"`
	WorkspaceID   string   `json:"workspaceId"`
	ExtractedAt   int64    `json:"extractedAt"`
	Adapters      []string `json:"adapters"`
	TotalThreads  int      `json:"totalThreads"`
	TotalMessages int      `json:"totalMessages"`
}

// NormalizationResult is the per-database output bundle. It is created fresh
// on every extraction pass and never mutated after return.
type NormalizationResult struct {
	Threads  []Thread       `json:"threads"`
	Messages []Message      `json:"messages"`
	Metadata ResultMetadata `json:"metadata"`
}

// GetExtractedAt returns the extraction timestamp as a time.Time.
func (r *NormalizationResult) GetExtractedAt() time.Time {
	return time.Unix(0, r.Metadata.ExtractedAt*int64(time.Millisecond))
}

// GetUpdatedAt returns the thread's last-update timestamp as a time.Time.
func (t *Thread) GetUpdatedAt() time.Time {
	return time.Unix(0, t.UpdatedAt*int64(time.Millisecond))
}
