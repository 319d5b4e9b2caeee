package activities

import (
	"context"
	"slices"
	"strings"
	"time"

	"teamup/internal/apperr"
	"teamup/internal/domain/geo"
)

var QueryTimeoutDuration = time.Second * 5

// Activity is a group-sport session at a venue.
type Activity struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Sport     string    `json:"sport"`
	Location  string    `json:"location"` // venue display name
	Lat       *float64  `json:"lat"`      // overrides the venue coordinates when set
	Lng       *float64  `json:"lng"`
	Capacity  int       `json:"capacity"`
	Roster    []string  `json:"roster"` // participant ids in join order
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Deleted   bool      `json:"deleted"`
}

// Point reports the activity's own coordinates, if both are set.
func (a *Activity) Point() (geo.Point, bool) {
	return geo.PointOf(a.Lat, a.Lng)
}

func (a *Activity) HasMember(userID string) bool {
	return slices.Contains(a.Roster, userID)
}

func (a *Activity) IsFull() bool {
	return len(a.Roster) >= a.Capacity
}

// Validate checks the fields a new activity must carry.
func (a *Activity) Validate() error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return apperr.MissingParameter("title is required")
	case strings.TrimSpace(a.Sport) == "":
		return apperr.MissingParameter("sport is required")
	case strings.TrimSpace(a.Location) == "":
		return apperr.MissingParameter("location is required")
	case a.Capacity < 1:
		return apperr.InvalidArgument("capacity must be a positive integer")
	case (a.Lat == nil) != (a.Lng == nil):
		return apperr.InvalidArgument("lat and lng must be given together")
	case len(a.Roster) > a.Capacity:
		return apperr.InvalidArgument("roster exceeds capacity")
	}
	if p, ok := a.Point(); ok && !p.Valid() {
		return apperr.InvalidArgument("lat/lng out of range")
	}
	seen := make(map[string]struct{}, len(a.Roster))
	for _, id := range a.Roster {
		if _, dup := seen[id]; dup {
			return apperr.InvalidArgument("roster contains duplicate ids")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (a *Activity) clone() Activity {
	out := *a
	out.Roster = append([]string{}, a.Roster...)
	if a.Lat != nil {
		lat := *a.Lat
		out.Lat = &lat
	}
	if a.Lng != nil {
		lng := *a.Lng
		out.Lng = &lng
	}
	return out
}

// Filter narrows List. Deleted activities are never listed.
type Filter struct {
	Sport string
}

func (f Filter) matches(a *Activity) bool {
	if a.Deleted {
		return false
	}
	return f.Sport == "" || strings.EqualFold(a.Sport, f.Sport)
}

// MutateFunc edits an activity in place. Returning an error aborts the write.
type MutateFunc func(a *Activity) error

type Store interface {
	Create(ctx context.Context, a *Activity) error
	GetByID(ctx context.Context, id string) (*Activity, error)
	// List returns non-deleted activities in insertion order.
	List(ctx context.Context, filter Filter) ([]Activity, error)
	// Update applies fn to the current state of one activity and persists the
	// result. Concurrent updates of the same activity are serialized, so fn
	// always sees the latest committed state.
	Update(ctx context.Context, id string, fn MutateFunc) (*Activity, error)
}
