package internal

import "testing"

func TestModernAdapter_ConversationArray(t *testing.T) {
	reader := openFixtureReader(t, map[string]string{
		"composerData:abc123": `{"name":"Refactor plan","createdAt":1000,"lastUpdatedAt":5000,"conversation":[
			{"type":1,"text":"rename this","timestamp":1000},
			{"type":2,"text":"renamed","timestamp":2000}
		]}`,
	})

	adapter := NewModernAdapter(NewNopLogger())
	data, err := adapter.Extract(reader, "ws1")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(data.Threads) != 1 {
		t.Fatalf("Extract() returned %d threads, want 1", len(data.Threads))
	}
	thread := data.Threads[0]
	if thread.Title != "Refactor plan" {
		t.Errorf("Title = %q, want %q", thread.Title, "Refactor plan")
	}
	if thread.CreatedAt != 1000 || thread.UpdatedAt != 5000 {
		t.Errorf("timestamps = %d/%d, want 1000/5000", thread.CreatedAt, thread.UpdatedAt)
	}
	if thread.Metadata["composerId"] != "abc123" {
		t.Errorf("composerId metadata = %v, want abc123", thread.Metadata["composerId"])
	}
	if len(data.Messages) != 2 {
		t.Fatalf("Extract() returned %d messages, want 2", len(data.Messages))
	}
	if data.Messages[0].Role != RoleUser || data.Messages[1].Role != RoleAssistant {
		t.Errorf("roles = %q/%q, want user/assistant", data.Messages[0].Role, data.Messages[1].Role)
	}
}

func TestModernAdapter_NestedConversationObject(t *testing.T) {
	reader := openFixtureReader(t, map[string]string{
		"composerData:nested1": `{"name":"Outer title","conversation":{"messages":[
			{"role":"user","text":"inner question","timestamp":100}
		]}}`,
	})

	adapter := NewModernAdapter(NewNopLogger())
	data, err := adapter.Extract(reader, "ws1")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(data.Threads) != 1 {
		t.Fatalf("Extract() returned %d threads, want 1", len(data.Threads))
	}
	if data.Threads[0].Title != "Outer title" {
		t.Errorf("Title = %q, want wrapper title to win", data.Threads[0].Title)
	}
	if len(data.Messages) != 1 || data.Messages[0].Content != "inner question" {
		t.Errorf("messages = %+v, want the nested message", data.Messages)
	}
}

func TestModernAdapter_BarePair(t *testing.T) {
	reader := openFixtureReader(t, map[string]string{
		"composerData:pair1": `{"prompt":"explain","response":"sure","timestamp":7000}`,
	})

	adapter := NewModernAdapter(NewNopLogger())
	data, err := adapter.Extract(reader, "ws1")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(data.Threads) != 1 || len(data.Messages) != 2 {
		t.Fatalf("Extract() = %d threads/%d messages, want 1/2", len(data.Threads), len(data.Messages))
	}
	if data.Messages[1].Timestamp != 7001 {
		t.Errorf("response timestamp = %d, want 7001", data.Messages[1].Timestamp)
	}
}

func TestModernAdapter_MalformedEntrySkipped(t *testing.T) {
	logger := NewCollectorLogger()
	reader := openFixtureReader(t, map[string]string{
		"composerData:bad":  `{{{`,
		"composerData:good": `{"conversation":[{"type":1,"text":"ok","timestamp":1}]}`,
	})

	adapter := NewModernAdapter(logger)
	data, err := adapter.Extract(reader, "ws1")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(data.Threads) != 1 {
		t.Errorf("Extract() returned %d threads, want 1", len(data.Threads))
	}
	if len(logger.EntriesAt(LogLevelWarn)) == 0 {
		t.Error("expected a warning for the malformed composer entry")
	}
}

func TestModernAdapter_EmptyConversationOmitted(t *testing.T) {
	reader := openFixtureReader(t, map[string]string{
		"composerData:empty": `{"conversation":[]}`,
	})

	adapter := NewModernAdapter(NewNopLogger())
	data, err := adapter.Extract(reader, "ws1")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(data.Threads) != 0 {
		t.Errorf("Extract() returned %d threads, want 0 for an empty conversation", len(data.Threads))
	}
}
