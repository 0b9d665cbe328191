package internal

import (
	"testing"
	"time"
)

func TestGetExtractedAt(t *testing.T) {
	r := &NormalizationResult{Metadata: ResultMetadata{ExtractedAt: 1700000000000}}
	want := time.Unix(0, 1700000000000*int64(time.Millisecond))
	if got := r.GetExtractedAt(); !got.Equal(want) {
		t.Errorf("GetExtractedAt() = %v, want %v", got, want)
	}
}

func TestGetUpdatedAt(t *testing.T) {
	thread := &Thread{UpdatedAt: 1700000001000}
	want := time.Unix(0, 1700000001000*int64(time.Millisecond))
	if got := thread.GetUpdatedAt(); !got.Equal(want) {
		t.Errorf("GetUpdatedAt() = %v, want %v", got, want)
	}
}
