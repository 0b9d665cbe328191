package internal

import "reflect"

// Diff is the set of entities that changed between two normalization passes
// over the same database, shaped for incremental pushes. Messages are
// append-only in the source, so there is no updated-message category.
type Diff struct {
	NewThreads     []Thread  `json:"newThreads"`
	NewMessages    []Message `json:"newMessages"`
	UpdatedThreads []Thread  `json:"updatedThreads"`
}

// Empty reports whether the diff carries no changes.
func (d *Diff) Empty() bool {
	return len(d.NewThreads) == 0 && len(d.NewMessages) == 0 && len(d.UpdatedThreads) == 0
}

// ComputeDiff classifies every thread and message of current against
// previous. A nil previous means everything is new. A thread present in both
// is updated when the two records are not structurally equal.
func ComputeDiff(previous, current *NormalizationResult) *Diff {
	diff := &Diff{
		NewThreads:     []Thread{},
		NewMessages:    []Message{},
		UpdatedThreads: []Thread{},
	}

	if previous == nil {
		diff.NewThreads = append(diff.NewThreads, current.Threads...)
		diff.NewMessages = append(diff.NewMessages, current.Messages...)
		return diff
	}

	previousThreads := make(map[string]Thread, len(previous.Threads))
	for _, thread := range previous.Threads {
		previousThreads[thread.ID] = thread
	}
	previousMessages := make(map[string]bool, len(previous.Messages))
	for _, msg := range previous.Messages {
		previousMessages[msg.ID] = true
	}

	for _, thread := range current.Threads {
		old, ok := previousThreads[thread.ID]
		if !ok {
			diff.NewThreads = append(diff.NewThreads, thread)
			continue
		}
		if !reflect.DeepEqual(old, thread) {
			diff.UpdatedThreads = append(diff.UpdatedThreads, thread)
		}
	}

	for _, msg := range current.Messages {
		if !previousMessages[msg.ID] {
			diff.NewMessages = append(diff.NewMessages, msg)
		}
	}

	return diff
}

// ResultsEqual reports whether two results carry structurally equal thread
// and message sequences. Cheap short-circuit before a full diff.
func ResultsEqual(a, b *NormalizationResult) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a.Threads, b.Threads) && reflect.DeepEqual(a.Messages, b.Messages)
}
