package venues

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamup/internal/apperr"
)

// MemoryStore keeps venues in process. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	venues  []*Venue
	byKey   map[string]*Venue
	reviews map[string][]Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byKey:   make(map[string]*Venue),
		reviews: make(map[string][]Review),
	}
}

func (s *MemoryStore) List(ctx context.Context) ([]Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("listing venues", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Venue, 0, len(s.venues))
	for _, v := range s.venues {
		out = append(out, s.copyLocked(v))
	}
	return out, nil
}

func (s *MemoryStore) GetByNormalizedName(ctx context.Context, normalized string) (*Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("loading venue", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[normalized]
	if !ok {
		return nil, apperr.NotFound("venue not found")
	}
	out := s.copyLocked(v)
	return &out, nil
}

func (s *MemoryStore) CreateIfAbsent(ctx context.Context, v *Venue) (*Venue, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, apperr.FromStorage("creating venue", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byKey[v.NormalizedName]; ok {
		out := s.copyLocked(existing)
		return &out, false, nil
	}

	now := time.Now().UTC()
	stored := *v
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.Reviews = nil
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.venues = append(s.venues, &stored)
	s.byKey[stored.NormalizedName] = &stored

	out := s.copyLocked(&stored)
	return &out, true, nil
}

func (s *MemoryStore) UpsertReview(ctx context.Context, review *Review) error {
	if err := ctx.Err(); err != nil {
		return apperr.FromStorage("saving review", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	list := s.reviews[review.VenueID]
	for i := range list {
		if list[i].AuthorID == review.AuthorID {
			review.CreatedAt = list[i].CreatedAt
			review.UpdatedAt = now
			list[i] = *review
			return nil
		}
	}

	review.CreatedAt = now
	review.UpdatedAt = now
	s.reviews[review.VenueID] = append(list, *review)
	return nil
}

func (s *MemoryStore) GetReviews(ctx context.Context, venueID string) ([]Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("loading reviews", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Review(nil), s.reviews[venueID]...), nil
}

func (s *MemoryStore) UpdateRating(ctx context.Context, venueID string, average *float64, count int) error {
	if err := ctx.Err(); err != nil {
		return apperr.FromStorage("updating rating", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.venues {
		if v.ID == venueID {
			v.AverageRating = copyFloat(average)
			v.ReviewCount = count
			v.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return apperr.NotFound("venue not found")
}

func (s *MemoryStore) copyLocked(v *Venue) Venue {
	out := *v
	out.Lat = copyFloat(v.Lat)
	out.Lng = copyFloat(v.Lng)
	out.AverageRating = copyFloat(v.AverageRating)
	out.Reviews = append([]Review{}, s.reviews[v.ID]...)
	return out
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
