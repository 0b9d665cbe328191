package internal

import (
	"sort"
)

// Normalizer orchestrates discovery, safe reading, adapter extraction, merge
// precedence and retention limits, emitting one NormalizationResult per
// database.
type Normalizer struct {
	cfg      Config
	adapters []Adapter
	logger   Logger

	// findDatabases is swapped out in tests.
	findDatabases func() ([]string, error)
}

// NewNormalizer creates a Normalizer with the default adapter set: the
// modern composer adapter first, the legacy adapter as fallback.
func NewNormalizer(cfg Config, logger Logger) *Normalizer {
	if logger == nil {
		logger = NewNopLogger()
	}
	n := &Normalizer{
		cfg:           cfg,
		logger:        logger,
		findDatabases: FindDatabases,
	}
	if cfg.StoragePath != "" {
		n.findDatabases = func() ([]string, error) {
			return findDatabasesIn(cfg.StoragePath), nil
		}
	}
	n.Register(NewModernAdapter(logger))
	n.Register(NewLegacyAdapter(logger))
	return n
}

// Register appends an adapter. Registration order is merge precedence: the
// first adapter's threads are authoritative, later adapters only contribute
// threads whose derived id is not already present.
func (n *Normalizer) Register(adapter Adapter) {
	n.adapters = append(n.adapters, adapter)
}

// NormalizeDatabase runs the full pipeline against one database path.
func (n *Normalizer) NormalizeDatabase(path string) (*NormalizationResult, error) {
	workspaceID, ok := WorkspaceIDForPath(path)
	if !ok {
		workspaceID = "unknown"
	}

	reader, err := OpenSafeReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	result := &NormalizationResult{
		Threads:  []Thread{},
		Messages: []Message{},
		Metadata: ResultMetadata{
			DatabasePath: path,
			WorkspaceID:  workspaceID,
			ExtractedAt:  nowMillis(),
		},
	}

	seen := make(map[string]bool)
	for i, adapter := range n.adapters {
		// With a preferred format configured, later adapters run only as a
		// fallback when nothing has been extracted yet.
		if i > 0 && n.cfg.PreferModern && len(result.Threads) > 0 {
			break
		}

		extracted, err := adapter.Extract(reader, workspaceID)
		if err != nil {
			return nil, err
		}

		contributed := false
		for _, thread := range extracted.Threads {
			if seen[thread.ID] {
				continue
			}
			seen[thread.ID] = true
			contributed = true
			result.Threads = append(result.Threads, thread)
			for _, msg := range extracted.Messages {
				if msg.ThreadID == thread.ID {
					result.Messages = append(result.Messages, msg)
				}
			}
		}
		if contributed {
			result.Metadata.Adapters = append(result.Metadata.Adapters, adapter.Name())
		}
	}

	n.applyLimits(result)

	result.Metadata.TotalThreads = len(result.Threads)
	result.Metadata.TotalMessages = len(result.Messages)
	return result, nil
}

// NormalizeAllDatabases discovers and normalizes every database. A database
// whose extraction fails is logged and skipped; one that yields no threads is
// omitted. Only an unsupported platform aborts the pass.
func (n *Normalizer) NormalizeAllDatabases() ([]*NormalizationResult, error) {
	paths, err := n.findDatabases()
	if err != nil {
		return nil, err
	}

	results := []*NormalizationResult{}
	for _, path := range paths {
		result, err := n.NormalizeDatabase(path)
		if err != nil {
			n.logger.Errorf("skipping database %s: %v", path, err)
			continue
		}
		if len(result.Threads) == 0 {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// applyLimits enforces the configured retention limits: first the per-database
// thread cap (most recently updated survive), then the per-thread message cap
// (oldest N by timestamp). Counts and previews are recomputed from what is
// kept.
func (n *Normalizer) applyLimits(result *NormalizationResult) {
	if n.cfg.MaxThreadsPerDatabase > 0 && len(result.Threads) > n.cfg.MaxThreadsPerDatabase {
		sort.SliceStable(result.Threads, func(i, j int) bool {
			return result.Threads[i].UpdatedAt > result.Threads[j].UpdatedAt
		})
		result.Threads = result.Threads[:n.cfg.MaxThreadsPerDatabase]

		kept := make(map[string]bool, len(result.Threads))
		for _, thread := range result.Threads {
			kept[thread.ID] = true
		}
		filtered := result.Messages[:0]
		for _, msg := range result.Messages {
			if kept[msg.ThreadID] {
				filtered = append(filtered, msg)
			}
		}
		result.Messages = filtered
	}

	byThread := make(map[string][]Message)
	for _, msg := range result.Messages {
		byThread[msg.ThreadID] = append(byThread[msg.ThreadID], msg)
	}

	messages := make([]Message, 0, len(result.Messages))
	for i := range result.Threads {
		thread := &result.Threads[i]
		group := byThread[thread.ID]
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].Timestamp < group[b].Timestamp
		})
		if n.cfg.MaxMessagesPerThread > 0 && len(group) > n.cfg.MaxMessagesPerThread {
			group = group[:n.cfg.MaxMessagesPerThread]
		}

		thread.MessageCount = len(group)
		thread.LastMessage = ""
		if len(group) > 0 {
			thread.LastMessage = previewText(group[len(group)-1].Content)
		}
		messages = append(messages, group...)
	}
	result.Messages = messages
}
