package internal

import (
	"encoding/json"
	"strings"
)

// modernKeyPrefix is the per-conversation key pattern used by composer-era
// Cursor builds: composerData:<composerId>.
const modernKeyPrefix = "composerData:"

// ModernAdapter extracts threads from the composer storage generation: one
// entry per conversation, keyed by composer id. Payloads may carry their
// turns under a "conversation"/"messages"/"history" array, nest a single
// conversation object, or be a bare prompt/response pair.
type ModernAdapter struct {
	logger Logger
}

// NewModernAdapter creates a modern-format adapter.
func NewModernAdapter(logger Logger) *ModernAdapter {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &ModernAdapter{logger: logger}
}

// Name identifies this adapter in merge precedence and thread provenance.
func (a *ModernAdapter) Name() string { return "modern" }

// Extract reads every composerData entry and converts each recognized
// payload into one thread. A malformed entry never aborts the extraction of
// the remaining entries.
func (a *ModernAdapter) Extract(reader *SafeReader, workspaceID string) (*ExtractedData, error) {
	entries, err := reader.GetEntriesByPrefix(modernKeyPrefix)
	if err != nil {
		return nil, err
	}

	workspaceName := WorkspaceNameForPath(reader.SourcePath())
	data := &ExtractedData{}

	for _, entry := range entries {
		composerID := strings.TrimPrefix(entry.Key, modernKeyPrefix)

		var payload interface{}
		if err := json.Unmarshal([]byte(entry.Value), &payload); err != nil {
			a.logger.Warnf("%v", &MalformedRecordError{Adapter: a.Name(), Key: entry.Key, Err: err})
			continue
		}

		session, ok := a.sessionFromPayload(composerID, payload)
		if !ok {
			a.logger.Warnf("unrecognized composer payload shape under %s, skipping", entry.Key)
			continue
		}
		if len(session.messages) == 0 {
			continue
		}

		thread, messages := buildThread(workspaceID, workspaceName, a.Name(), session)
		data.Threads = append(data.Threads, thread)
		data.Messages = append(data.Messages, messages...)
	}

	return data, nil
}

// sessionFromPayload dispatches over the known composer payload shapes.
func (a *ModernAdapter) sessionFromPayload(composerID string, payload interface{}) (rawSession, bool) {
	switch v := payload.(type) {
	case []interface{}:
		// Bare array: treat the elements as the conversation itself.
		session := rawSession{sourceIndex: composerID, extras: composerExtras(composerID)}
		a.fillMessages(&session, v)
		return session, true
	case map[string]interface{}:
		return a.sessionFromMap(composerID, v)
	default:
		return rawSession{}, false
	}
}

func (a *ModernAdapter) sessionFromMap(composerID string, m map[string]interface{}) (rawSession, bool) {
	// A nested single conversation object carries the real data one level
	// down; titles and timestamps on the wrapper still win when present.
	if nested, ok := m["conversation"]; ok {
		if nestedMap, ok := mapValue(nested); ok {
			session, ok := a.sessionFromMap(composerID, nestedMap)
			if ok {
				if session.title == "" {
					session.title = stringField(m, "name", "title")
				}
				if session.createdAt == 0 {
					session.createdAt = int64Field(m, "createdAt")
				}
				if session.updatedAt == 0 {
					session.updatedAt = int64Field(m, "lastUpdatedAt", "updatedAt")
				}
				return session, true
			}
			return rawSession{}, false
		}
	}

	session := rawSession{
		title:       stringField(m, "name", "title"),
		createdAt:   int64Field(m, "createdAt"),
		updatedAt:   int64Field(m, "lastUpdatedAt", "updatedAt"),
		sourceIndex: composerID,
		extras:      composerExtras(composerID),
	}

	if items, ok := arrayField(m, "conversation", "messages", "history"); ok {
		a.fillMessages(&session, items)
		return session, true
	}

	if isPromptResponsePair(m) {
		session.messages = messagesFromPair(m)
		return session, true
	}

	return rawSession{}, false
}

func (a *ModernAdapter) fillMessages(session *rawSession, items []interface{}) {
	for i, item := range items {
		msg, ok := parseMessageEntry(item)
		if !ok {
			a.logger.Debugf("skipping empty message %d in composer %s", i, session.sourceIndex)
			continue
		}
		session.messages = append(session.messages, msg)
	}
}

func composerExtras(composerID string) map[string]interface{} {
	return map[string]interface{}{"composerId": composerID}
}
