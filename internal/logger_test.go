package internal

import "testing"

func TestCollectorLogger(t *testing.T) {
	logger := NewCollectorLogger()

	logger.Errorf("error %d", 1)
	logger.Warnf("warn %s", "a")
	logger.Warnf("warn %s", "b")
	logger.Infof("info")
	logger.Debugf("debug")

	if got := len(logger.Entries()); got != 5 {
		t.Fatalf("Entries() = %d, want 5", got)
	}

	warns := logger.EntriesAt(LogLevelWarn)
	if len(warns) != 2 {
		t.Fatalf("EntriesAt(warn) = %d, want 2", len(warns))
	}
	if warns[0].Message != "warn a" || warns[1].Message != "warn b" {
		t.Errorf("warnings = %q/%q, want formatted in order", warns[0].Message, warns[1].Message)
	}

	errs := logger.EntriesAt(LogLevelError)
	if len(errs) != 1 || errs[0].Message != "error 1" {
		t.Errorf("errors = %v, want one formatted entry", errs)
	}
}

func TestNopLoggerSatisfiesInterface(t *testing.T) {
	var _ Logger = NewNopLogger()
	var _ Logger = NewStdLogger(LogLevelDebug)
	var _ Logger = NewCollectorLogger()
}
