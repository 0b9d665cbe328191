package internal

import (
	"fmt"
	"time"
)

// ExtractedData is the raw output of one adapter before merge and limits.
type ExtractedData struct {
	Threads  []Thread
	Messages []Message
}

// Adapter extracts threads and messages from a database assuming one
// specific source schema generation. Cursor's schema keeps drifting, so the
// set is open-ended: the Normalizer iterates a registration-ordered slice and
// new generations only need a new Adapter, not new merge logic.
type Adapter interface {
	Name() string
	Extract(reader *SafeReader, workspaceID string) (*ExtractedData, error)
}

// nowMillis is swapped out in tests that need deterministic id fallback.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// rawSession is the adapter-internal shape every payload variant is decoded
// into before thread construction.
type rawSession struct {
	title       string
	createdAt   int64
	updatedAt   int64
	sourceIndex string
	messages    []rawMessage
	extras      map[string]interface{}
}

// rawMessage is one decoded turn.
type rawMessage struct {
	role      string
	content   string
	timestamp int64
	filenames []string
	metadata  map[string]interface{}
}

// buildThread converts a rawSession into a Thread plus its Messages, deriving
// stable ids and extracting code blocks.
func buildThread(workspaceID, workspaceName, adapterName string, session rawSession) (Thread, []Message) {
	firstTimestamp := int64(0)
	for _, msg := range session.messages {
		if msg.timestamp > 0 {
			firstTimestamp = msg.timestamp
			break
		}
	}
	if firstTimestamp == 0 {
		firstTimestamp = session.createdAt
	}
	if firstTimestamp == 0 {
		// No timestamp anywhere in the record: fall back to wall-clock time.
		// The derived thread id is not reproducible across runs in this case.
		firstTimestamp = nowMillis()
	}

	threadID := ThreadID(workspaceID, adapterName, session.sourceIndex, firstTimestamp)

	messages := make([]Message, 0, len(session.messages))
	for i, raw := range session.messages {
		timestamp := raw.timestamp
		if timestamp == 0 {
			timestamp = firstTimestamp + int64(i)
		}

		blocks := ExtractCodeBlocks(raw.content)
		attachFilenames(blocks, raw.filenames)

		messages = append(messages, Message{
			ID:         MessageID(threadID, raw.role, i),
			ThreadID:   threadID,
			Role:       raw.role,
			Content:    raw.content,
			Timestamp:  timestamp,
			CodeBlocks: blocks,
			Metadata:   raw.metadata,
		})
	}

	createdAt := session.createdAt
	if createdAt == 0 {
		createdAt = firstTimestamp
	}
	updatedAt := session.updatedAt
	if len(messages) > 0 && messages[len(messages)-1].Timestamp > updatedAt {
		updatedAt = messages[len(messages)-1].Timestamp
	}
	if updatedAt < createdAt {
		updatedAt = createdAt
	}

	firstContent := ""
	lastContent := ""
	if len(messages) > 0 {
		firstContent = messages[0].Content
		lastContent = messages[len(messages)-1].Content
	}

	metadata := map[string]interface{}{
		"source":      adapterName,
		"sourceIndex": session.sourceIndex,
	}
	for k, v := range session.extras {
		metadata[k] = v
	}

	thread := Thread{
		ID:            threadID,
		Title:         DeriveTitle(session.title, firstContent),
		WorkspaceID:   workspaceID,
		WorkspaceName: workspaceName,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		MessageCount:  len(messages),
		LastMessage:   previewText(lastContent),
		Metadata:      metadata,
	}
	return thread, messages
}

// attachFilenames pairs explicit source filenames with the trailing code
// blocks they were appended for.
func attachFilenames(blocks []CodeBlock, filenames []string) {
	if len(filenames) == 0 || len(filenames) > len(blocks) {
		return
	}
	offset := len(blocks) - len(filenames)
	for i, name := range filenames {
		blocks[offset+i].Filename = name
	}
}

const previewMaxLength = 100

// previewText truncates message content for the thread's lastMessage field.
func previewText(content string) string {
	runes := []rune(content)
	if len(runes) <= previewMaxLength {
		return content
	}
	return string(runes[:previewMaxLength])
}

// The helpers below decode fields out of arbitrary JSON maps. Cursor's value
// schema is undocumented and inconsistent, so nothing here assumes a field
// exists: every accessor probes a list of known aliases and reports absence.

func mapValue(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func arrayValue(v interface{}) ([]interface{}, bool) {
	a, ok := v.([]interface{})
	return a, ok
}

// stringField returns the first present string value among the given keys.
func stringField(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// int64Field returns the first present numeric value among the given keys.
// JSON numbers arrive as float64.
func int64Field(m map[string]interface{}, keys ...string) int64 {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int64(n)
		case int64:
			return n
		case int:
			return int64(n)
		}
	}
	return 0
}

// arrayField returns the first present array value among the given keys.
func arrayField(m map[string]interface{}, keys ...string) ([]interface{}, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if a, ok := arrayValue(v); ok {
				return a, true
			}
		}
	}
	return nil, false
}

// roleFromEntry resolves a message role from the known role/type/sender
// fields, handling Cursor's numeric bubble types as well as free text.
func roleFromEntry(m map[string]interface{}) string {
	for _, key := range []string{"role", "type", "sender", "author", "actor"} {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			return NormalizeRole(t)
		case float64:
			return NormalizeRoleType(int(t))
		}
	}
	return RoleUser
}

// parseMessageEntry decodes one element of a messages array. Returns false
// when the element carries no usable content.
func parseMessageEntry(v interface{}) (rawMessage, bool) {
	m, ok := mapValue(v)
	if !ok {
		return rawMessage{}, false
	}

	msg := rawMessage{
		role:      roleFromEntry(m),
		content:   stringField(m, "content", "text", "message", "body"),
		timestamp: int64Field(m, "timestamp", "createdAt", "unixMs", "time"),
	}

	// Explicit code blocks stored beside the text are folded back into the
	// content as fences so downstream consumers see a single markdown body.
	if blocks, ok := arrayField(m, "codeBlocks", "suggestedCodeBlocks"); ok {
		for _, bv := range blocks {
			bm, ok := mapValue(bv)
			if !ok {
				continue
			}
			code := stringField(bm, "content", "code")
			if code == "" {
				continue
			}
			language := stringField(bm, "language", "languageId")
			if language == "" {
				language = "text"
			}
			msg.content += fmt.Sprintf("\n\n```%s\n%s\n```", language, code)
			msg.filenames = append(msg.filenames, stringField(bm, "filename", "file", "uri"))
		}
		msg.content = trimLeadingNewlines(msg.content)
	}

	if msg.content == "" {
		return rawMessage{}, false
	}

	if bubbleID := stringField(m, "bubbleId"); bubbleID != "" {
		msg.metadata = map[string]interface{}{"bubbleId": bubbleID}
	}

	return msg, true
}

// isPromptResponsePair reports whether a map is a discrete prompt/response
// record rather than a session or message object.
func isPromptResponsePair(m map[string]interface{}) bool {
	if _, ok := m["prompt"]; ok {
		return true
	}
	if _, ok := m["textDescription"]; ok {
		return true
	}
	if _, ok := m["response"]; ok {
		if _, hasText := m["text"]; hasText {
			return true
		}
		if _, hasMessages := m["messages"]; !hasMessages {
			return true
		}
	}
	return false
}

// messagesFromPair expands a prompt/response record into a user turn and,
// when a response exists, an assistant turn one millisecond later.
func messagesFromPair(m map[string]interface{}) []rawMessage {
	timestamp := int64Field(m, "timestamp", "unixMs", "createdAt", "time")

	var messages []rawMessage
	if prompt := stringField(m, "prompt", "text", "textDescription"); prompt != "" {
		messages = append(messages, rawMessage{
			role:      RoleUser,
			content:   prompt,
			timestamp: timestamp,
		})
	}
	if response := stringField(m, "response", "answer"); response != "" {
		responseTS := int64(0)
		if timestamp > 0 {
			responseTS = timestamp + 1
		}
		messages = append(messages, rawMessage{
			role:      RoleAssistant,
			content:   response,
			timestamp: responseTS,
		})
	}
	return messages
}

func trimLeadingNewlines(s string) string {
	for len(s) > 0 && s[0] == '\n' {
		s = s[1:]
	}
	return s
}
