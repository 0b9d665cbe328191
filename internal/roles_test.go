package internal

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", RoleUser},
		{"Human", RoleUser},
		{"HUMAN_TURN", RoleUser},
		{"assistant", RoleAssistant},
		{"AI", RoleAssistant},
		{"cursor-agent", RoleAssistant},
		{"chatbot", RoleAssistant},
		{"system", RoleSystem},
		{"System Prompt", RoleSystem},
		{"tool", RoleTool},
		{"function_call", RoleTool},
		{"", RoleUser},
		{"unknown-sender", RoleUser},
	}

	for _, tt := range tests {
		if got := NormalizeRole(tt.input); got != tt.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRoleType(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{1, RoleUser},
		{2, RoleAssistant},
		{0, RoleUser},
		{7, RoleUser},
	}

	for _, tt := range tests {
		if got := NormalizeRoleType(tt.input); got != tt.want {
			t.Errorf("NormalizeRoleType(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
