package repository

import (
	"sync"
	"time"

	"finance-toolkit/domain"
)

const sessionCleanupInterval = 10 * time.Minute

type memoryEntry struct {
	session  domain.Session
	lastSeen time.Time
}

// SessionRepositoryMemory is an in-memory implementation of SessionRepository.
// Idle entries are hidden by Get as soon as they pass ttl and removed by a
// periodic sweep.
type SessionRepositoryMemory struct {
	mu          sync.Mutex
	ttl         time.Duration
	data        map[string]memoryEntry
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewSessionRepositoryMemory creates a new in-memory session repository.
// A zero ttl keeps entries forever and starts no sweeper.
func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	r := newSessionRepositoryMemory(ttl, time.Now)
	if ttl > 0 {
		go r.cleanupLoop(sessionCleanupInterval)
	}
	return r
}

func newSessionRepositoryMemory(ttl time.Duration, now func() time.Time) *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		ttl:         ttl,
		data:        make(map[string]memoryEntry),
		now:         now,
		stopCleanup: make(chan struct{}),
	}
}

func (r *SessionRepositoryMemory) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *SessionRepositoryMemory) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.data {
		if r.expired(e) {
			delete(r.data, id)
		}
	}
}

// Close stops the sweeper. It is safe to call more than once.
func (r *SessionRepositoryMemory) Close() error {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
	return nil
}

func (r *SessionRepositoryMemory) Get(id string) (domain.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.data[id]
	if !ok {
		return domain.Session{}, false, nil
	}
	if r.expired(entry) {
		delete(r.data, id)
		return domain.Session{}, false, nil
	}
	return entry.session, true, nil
}

func (r *SessionRepositoryMemory) Set(id string, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[id] = memoryEntry{session: session, lastSeen: r.now()}
	return nil
}

// Len reports the number of live entries.
func (r *SessionRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.data {
		if !r.expired(e) {
			n++
		}
	}
	return n
}

func (r *SessionRepositoryMemory) expired(e memoryEntry) bool {
	return r.ttl > 0 && r.now().Sub(e.lastSeen) > r.ttl
}
