package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// idLength is the truncated hex length of derived identifiers.
const idLength = 16

// ThreadID derives a stable thread identifier from the workspace, the
// adapter that produced it, a source-local index (composer id, storage key,
// or positional index) and the first message's timestamp. Repeated
// extractions of unchanged data yield the same id, while ids stay distinct
// across adapters and workspaces.
//
// When the source record carries no timestamp the caller falls back to
// wall-clock time, which makes the id non-reproducible across runs for that
// record. Known limitation, inherited from the source data.
func ThreadID(workspaceID, adapter, sourceIndex string, firstTimestamp int64) string {
	return shortHash(fmt.Sprintf("%s|%s|%s|%d", workspaceID, adapter, sourceIndex, firstTimestamp))
}

// MessageID derives a stable message identifier from its thread, role and
// position within the thread.
func MessageID(threadID, role string, index int) string {
	return shortHash(fmt.Sprintf("%s|%s|%d", threadID, role, index))
}

func shortHash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:idLength]
}
