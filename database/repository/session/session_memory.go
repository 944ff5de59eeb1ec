package sessionRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"decorquote/models"
)

type memoryLock struct {
	owner     string
	expiresAt time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemorySessionRepo keeps sessions in process memory. It backs the terminal
// front end and tests; entries expire lazily and on Sweep.
type InMemorySessionRepo struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	locks    map[string]memoryLock
	notices  map[string]memoryEntry
	now      func() time.Time
}

// NewInMemorySessionRepo creates an in-memory session repository.
func NewInMemorySessionRepo(ttl time.Duration) *InMemorySessionRepo {
	return &InMemorySessionRepo{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		locks:    make(map[string]memoryLock),
		notices:  make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (r *InMemorySessionRepo) Create(_ context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.SessionID] = memoryEntry{data: data, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *InMemorySessionRepo) Get(_ context.Context, id string) (*models.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.liveSession(id)
	if !ok {
		return nil, ErrNotFound
	}
	return decodeSession(entry.data)
}

func (r *InMemorySessionRepo) Update(_ context.Context, id string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.liveSession(id)
	if !ok {
		return nil, ErrNotFound
	}
	session, err := decodeSession(entry.data)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal updated booking session: %w", err)
	}
	r.sessions[id] = memoryEntry{data: data, expiresAt: r.now().Add(r.ttl)}
	return session, nil
}

func (r *InMemorySessionRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.liveSession(id)
	delete(r.sessions, id)
	delete(r.locks, id)
	return existed, nil
}

func (r *InMemorySessionRepo) AcquireSubmitLock(_ context.Context, id, owner string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, held := r.locks[id]; held && r.now().Before(l.expiresAt) {
		return false, nil
	}
	r.locks[id] = memoryLock{owner: owner, expiresAt: r.now().Add(ttl)}
	return true, nil
}

func (r *InMemorySessionRepo) ReleaseSubmitLock(_ context.Context, id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, held := r.locks[id]; held && l.owner == owner {
		delete(r.locks, id)
	}
	return nil
}

func (r *InMemorySessionRepo) PutNotice(_ context.Context, id string, notice models.Notice, ttl time.Duration) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices[id] = memoryEntry{data: data, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *InMemorySessionRepo) PopNotice(_ context.Context, id string) (*models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.notices[id]
	if !ok {
		return nil, nil
	}
	delete(r.notices, id)
	if !r.now().Before(entry.expiresAt) {
		return nil, nil
	}
	var n models.Notice
	if err := json.Unmarshal(entry.data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse notice: %w", err)
	}
	return &n, nil
}

// Sweep drops expired sessions, locks and notices. It returns how many sessions were removed.
func (r *InMemorySessionRepo) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	for id, l := range r.locks {
		if !now.Before(l.expiresAt) {
			delete(r.locks, id)
		}
	}
	for id, e := range r.notices {
		if !now.Before(e.expiresAt) {
			delete(r.notices, id)
		}
	}
	return removed
}

// liveSession must be called with mu held.
func (r *InMemorySessionRepo) liveSession(id string) (memoryEntry, bool) {
	entry, ok := r.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.sessions, id)
		return memoryEntry{}, false
	}
	return entry, true
}
