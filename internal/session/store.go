// Package session keeps the editor state of admin console screens between
// requests. Each session belongs to one open screen.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-jobboard/internal/content"
	"go-jobboard/internal/editor"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("editor session not found")

const DefaultTTL = 2 * time.Hour

type Session struct {
	ID string
	// JobID is empty while a new posting is being drafted.
	JobID string

	mu      sync.Mutex
	editor  *editor.JobEditor
	touched time.Time
}

// Do runs fn with exclusive access to the session's editor.
func (s *Session) Do(fn func(e *editor.JobEditor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// Store holds open sessions in memory. Sessions idle for longer than the TTL
// are dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Open starts a session editing job. jobID may be empty for a new posting.
func (st *Store) Open(jobID string, job content.Job) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		JobID:   jobID,
		editor:  editor.NewJobEditor(job),
		touched: st.now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Debug("editor session opened", zap.String("session", s.ID), zap.String("job", jobID))
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := st.now()
	if now.Sub(s.touched) > st.ttl {
		delete(st.sessions, id)
		return nil, ErrNotFound
	}
	s.touched = now
	return s, nil
}

// Close discards a session. Closing an unknown session is not an error.
func (st *Store) Close(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep removes expired sessions and reports how many were dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	dropped := 0
	for id, s := range st.sessions {
		if now.Sub(s.touched) > st.ttl {
			delete(st.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		st.logger.Info("expired editor sessions dropped", zap.Int("count", dropped))
	}
	return dropped
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
