package internal

import (
	"encoding/json"
	"fmt"
)

// legacyKeys are the well-known entries older Cursor builds wrote chat data
// under. The set is fixed; absent keys are simply skipped.
var legacyKeys = []string{
	"aiService.prompts",
	"aiService.generations",
	"workbench.panel.aichat.view.aichat.chatdata",
}

// LegacyAdapter extracts threads from the pre-composer storage generation.
// Payloads under the well-known keys may be a bare array of sessions, an
// object wrapping a "conversations"/"chats" array, a single session object,
// or a list of discrete prompt/response pairs. Anything else is skipped with
// a warning.
type LegacyAdapter struct {
	logger Logger
}

// NewLegacyAdapter creates a legacy-format adapter.
func NewLegacyAdapter(logger Logger) *LegacyAdapter {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &LegacyAdapter{logger: logger}
}

// Name identifies this adapter in merge precedence and thread provenance.
func (a *LegacyAdapter) Name() string { return "legacy" }

// Extract reads the well-known legacy keys and converts every recognized
// payload shape into threads and messages. A malformed entry never aborts
// the extraction of the remaining entries.
func (a *LegacyAdapter) Extract(reader *SafeReader, workspaceID string) (*ExtractedData, error) {
	entries, err := reader.GetEntriesByKeys(legacyKeys)
	if err != nil {
		return nil, err
	}

	workspaceName := WorkspaceNameForPath(reader.SourcePath())
	data := &ExtractedData{}

	for _, entry := range entries {
		var payload interface{}
		if err := json.Unmarshal([]byte(entry.Value), &payload); err != nil {
			a.logger.Warnf("%v", &MalformedRecordError{Adapter: a.Name(), Key: entry.Key, Err: err})
			continue
		}

		sessions := a.sessionsFromPayload(entry.Key, payload)
		for _, session := range sessions {
			if len(session.messages) == 0 {
				continue
			}
			thread, messages := buildThread(workspaceID, workspaceName, a.Name(), session)
			data.Threads = append(data.Threads, thread)
			data.Messages = append(data.Messages, messages...)
		}
	}

	return data, nil
}

// sessionsFromPayload dispatches over the known legacy payload shapes.
func (a *LegacyAdapter) sessionsFromPayload(key string, payload interface{}) []rawSession {
	switch v := payload.(type) {
	case []interface{}:
		return a.sessionsFromArray(key, v)
	case map[string]interface{}:
		if wrapped, ok := arrayField(v, "conversations", "chats"); ok {
			return a.sessionsFromArray(key, wrapped)
		}
		if isPromptResponsePair(v) {
			return []rawSession{a.sessionFromPair(key, 0, v)}
		}
		if session, ok := a.sessionFromMap(key, 0, v); ok {
			return []rawSession{session}
		}
		a.logger.Warnf("unrecognized legacy payload shape under %s, skipping", key)
		return nil
	default:
		a.logger.Warnf("unrecognized legacy payload shape under %s, skipping", key)
		return nil
	}
}

// sessionsFromArray handles both arrays of session objects and arrays of
// discrete prompt/response pairs; each pair becomes its own thread.
func (a *LegacyAdapter) sessionsFromArray(key string, items []interface{}) []rawSession {
	var sessions []rawSession
	for i, item := range items {
		m, ok := mapValue(item)
		if !ok {
			a.logger.Warnf("skipping non-object element %d under %s", i, key)
			continue
		}
		if isPromptResponsePair(m) {
			sessions = append(sessions, a.sessionFromPair(key, i, m))
			continue
		}
		if session, ok := a.sessionFromMap(key, i, m); ok {
			sessions = append(sessions, session)
			continue
		}
		a.logger.Warnf("skipping unrecognized element %d under %s", i, key)
	}
	return sessions
}

// sessionFromMap decodes a session object with an embedded messages array.
func (a *LegacyAdapter) sessionFromMap(key string, index int, m map[string]interface{}) (rawSession, bool) {
	items, ok := arrayField(m, "messages", "conversation", "history")
	if !ok {
		return rawSession{}, false
	}

	session := rawSession{
		title:       stringField(m, "title", "name"),
		createdAt:   int64Field(m, "createdAt", "timestamp"),
		updatedAt:   int64Field(m, "lastUpdatedAt", "updatedAt"),
		sourceIndex: fmt.Sprintf("%s#%d", key, index),
		extras:      map[string]interface{}{"key": key},
	}
	if id := stringField(m, "id", "sessionId", "chatId"); id != "" {
		session.sourceIndex = fmt.Sprintf("%s#%s", key, id)
		session.extras["originalId"] = id
	}

	for i, item := range items {
		msg, ok := parseMessageEntry(item)
		if !ok {
			a.logger.Debugf("skipping empty message %d in %s", i, session.sourceIndex)
			continue
		}
		session.messages = append(session.messages, msg)
	}
	return session, true
}

// sessionFromPair wraps one prompt/response record in its own thread.
func (a *LegacyAdapter) sessionFromPair(key string, index int, m map[string]interface{}) rawSession {
	return rawSession{
		sourceIndex: fmt.Sprintf("%s#%d", key, index),
		messages:    messagesFromPair(m),
		extras:      map[string]interface{}{"key": key},
	}
}
