package discovery

import (
	"context"
	"strings"
	"time"

	"teamup/internal/apperr"
	"teamup/internal/domain/activities"
	"teamup/internal/domain/geo"
	"teamup/internal/domain/venues"
)

const (
	DefaultListLimit   = 10
	DefaultNearbyLimit = 5
)

// Service answers activity queries and owns activity lifecycle outside the roster.
type Service struct {
	activities activities.Store
	venues     *venues.Registry
}

func NewService(store activities.Store, registry *venues.Registry) *Service {
	return &Service{activities: store, venues: registry}
}

type ListResult struct {
	Activities []activities.Activity
	Total      int
}

// List returns non-deleted activities in insertion order, at most limit.
func (s *Service) List(ctx context.Context, filter activities.Filter, limit int) (*ListResult, error) {
	if err := geo.ValidateLimit(limit); err != nil {
		return nil, err
	}

	all, err := s.activities.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Total: len(all), Activities: all}
	if len(all) > limit {
		res.Activities = all[:limit]
	}
	return res, nil
}

// NearbyActivity is an activity with the coordinates it was ranked by.
type NearbyActivity struct {
	activities.Activity
	Distance float64 `json:"distance"` // kilometers
}

type NearbyResult struct {
	Activities []NearbyActivity
	Total      int // activities with resolvable coordinates
}

// Nearby ranks activities by distance from origin. Activities without their
// own coordinates are placed through the venue catalog; ones that cannot be
// placed are left out.
func (s *Service) Nearby(ctx context.Context, origin geo.Point, limit int) (*NearbyResult, error) {
	if err := geo.ValidateLimit(limit); err != nil {
		return nil, err
	}
	if !origin.Valid() {
		return nil, apperr.InvalidArgument("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	list, err := s.activities.List(ctx, activities.Filter{})
	if err != nil {
		return nil, err
	}
	catalog, err := s.venues.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	locate := func(a activities.Activity) (geo.Point, bool) {
		return Locate(&a, catalog)
	}

	ranked, total, err := geo.Rank(origin, list, locate, limit)
	if err != nil {
		return nil, err
	}

	out := make([]NearbyActivity, 0, len(ranked))
	for _, r := range ranked {
		a := r.Item
		lat, lng := r.Point.Lat, r.Point.Lng
		a.Lat, a.Lng = &lat, &lng
		out = append(out, NearbyActivity{Activity: a, Distance: r.Distance})
	}
	return &NearbyResult{Activities: out, Total: total}, nil
}

// Locate resolves where an activity happens: its own coordinates first, then
// the venue catalog. Deleted activities have no location.
func Locate(a *activities.Activity, catalog []venues.Venue) (geo.Point, bool) {
	if a.Deleted {
		return geo.Point{}, false
	}
	if p, ok := a.Point(); ok {
		return p, true
	}
	p, err := venues.Resolve(a.Location, catalog)
	if err != nil {
		return geo.Point{}, false
	}
	return p, true
}

// Create stores a new activity and makes sure its venue is in the registry.
func (s *Service) Create(ctx context.Context, a *activities.Activity) (*activities.Activity, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.Sport = strings.TrimSpace(a.Sport)
	a.Location = strings.TrimSpace(a.Location)
	a.Deleted = false
	if err := a.Validate(); err != nil {
		return nil, err
	}

	var coords *geo.Point
	if p, ok := a.Point(); ok {
		coords = &p
	}
	if _, err := s.venues.GetOrCreate(ctx, a.Location, coords); err != nil {
		return nil, err
	}

	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns a visible activity.
func (s *Service) Get(ctx context.Context, id string) (*activities.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Deleted {
		return nil, apperr.NotFound("activity not found")
	}
	return a, nil
}

// Delete hides an activity from every query. The record stays in storage.
func (s *Service) Delete(ctx context.Context, id string) (*activities.Activity, error) {
	return s.activities.Update(ctx, id, func(a *activities.Activity) error {
		if a.Deleted {
			return apperr.NotFound("activity not found")
		}
		a.Deleted = true
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}
