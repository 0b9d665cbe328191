package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	inner := fmt.Errorf("boom")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "unsupported platform",
			err:  &UnsupportedPlatformError{OS: "plan9"},
			want: []string{"unsupported platform", "plan9"},
		},
		{
			name: "database open",
			err:  &DatabaseOpenError{Path: "/tmp/state.vscdb", Op: "copy", Err: inner},
			want: []string{"copy", "/tmp/state.vscdb", "boom"},
		},
		{
			name: "query",
			err:  &QueryError{Path: "/tmp/state.vscdb", Err: inner},
			want: []string{"query error", "/tmp/state.vscdb", "boom"},
		},
		{
			name: "malformed record",
			err:  &MalformedRecordError{Adapter: "legacy", Key: "aiService.prompts", Err: inner},
			want: []string{"legacy", "aiService.prompts", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("boom")

	for _, err := range []error{
		&DatabaseOpenError{Path: "p", Op: "open", Err: inner},
		&QueryError{Path: "p", Err: inner},
		&MalformedRecordError{Adapter: "modern", Key: "k", Err: inner},
	} {
		if !errors.Is(err, inner) {
			t.Errorf("errors.Is(%T, inner) = false, want true", err)
		}
	}
}
