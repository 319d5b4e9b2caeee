package activities

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamup/internal/apperr"
)

type entry struct {
	mu       sync.Mutex
	activity Activity
}

// MemoryStore keeps activities in process. Each activity has its own lock, so
// updates to different activities never wait on each other.
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*entry)}
}

func (s *MemoryStore) Create(ctx context.Context, a *Activity) error {
	if err := ctx.Err(); err != nil {
		return apperr.FromStorage("creating activity", err)
	}

	now := time.Now().UTC()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Roster == nil {
		a.Roster = []string{}
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[a.ID]; ok {
		return apperr.InvalidArgument("activity " + a.ID + " already exists")
	}
	s.entries[a.ID] = &entry{activity: a.clone()}
	s.order = append(s.order, a.ID)
	return nil
}

func (s *MemoryStore) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("loading activity", err)
	}

	e, ok := s.lookup(id)
	if !ok {
		return nil, apperr.NotFound("activity not found")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.activity.clone()
	return &out, nil
}

func (s *MemoryStore) List(ctx context.Context, filter Filter) ([]Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("listing activities", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Activity, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		e.mu.Lock()
		if filter.matches(&e.activity) {
			out = append(out, e.activity.clone())
		}
		e.mu.Unlock()
	}
	return out, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, fn MutateFunc) (*Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("updating activity", err)
	}

	e, ok := s.lookup(id)
	if !ok {
		return nil, apperr.NotFound("activity not found")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.activity.clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	e.activity = next

	out := next.clone()
	return &out, nil
}
