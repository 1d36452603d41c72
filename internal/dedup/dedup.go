package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

type announcedEntry struct {
	JobID     string `json:"job_id"`
	Timestamp int64  `json:"timestamp"`
}

// JobCache remembers which postings were already announced, so a restart
// between sending and marking the row in the database never sends twice.
type JobCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	ttl      time.Duration
	logger   *zap.Logger
}

const DefaultTTL = 90 * 24 * time.Hour

// NewJobCache creates or loads the cache stored under cacheDir.
func NewJobCache(cacheDir string, logger *zap.Logger) *JobCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		logger.Warn("failed to create cache directory", zap.Error(err))
	}
	cache := &JobCache{
		filePath: filepath.Join(cacheDir, "announced_jobs.json"),
		seen:     make(map[string]int64),
		ttl:      DefaultTTL,
		logger:   logger,
	}
	cache.load()
	return cache
}

func (jc *JobCache) IsSeen(jobID string) bool {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	_, exists := jc.seen[jobID]
	return exists
}

func (jc *JobCache) Add(jobIDs ...string) {
	jc.mu.Lock()
	defer jc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, id := range jobIDs {
		if _, exists := jc.seen[id]; !exists {
			jc.seen[id] = now
			changed = true
		}
	}

	if changed {
		jc.save()
	}
}

// load reads the cache from disk, dropping entries older than the TTL.
func (jc *JobCache) load() {
	data, err := os.ReadFile(jc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			jc.logger.Warn("failed to read announce cache", zap.Error(err))
		}
		return
	}

	var entries []announcedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		jc.logger.Warn("failed to parse announce cache", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-jc.ttl).UnixMilli()
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			jc.seen[e.JobID] = e.Timestamp
			loaded++
		}
	}
	jc.logger.Debug("announce cache loaded", zap.Int("loaded", loaded), zap.Int("expired", len(entries)-loaded))
}

// save writes the cache to disk. Callers hold mu.
func (jc *JobCache) save() {
	entries := make([]announcedEntry, 0, len(jc.seen))
	for id, ts := range jc.seen {
		entries = append(entries, announcedEntry{JobID: id, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		jc.logger.Warn("failed to marshal announce cache", zap.Error(err))
		return
	}
	if err := os.WriteFile(jc.filePath, data, 0644); err != nil {
		jc.logger.Warn("failed to write announce cache", zap.Error(err))
	}
}
