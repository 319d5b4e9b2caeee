package activities

import (
	"context"
	"slices"
	"strings"
	"time"

	"teamup/internal/apperr"
)

// RosterManager adds and removes participants. It is the only writer of
// Activity.Roster.
type RosterManager struct {
	store Store
	now   func() time.Time
}

func NewRosterManager(store Store) *RosterManager {
	return &RosterManager{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Join appends userID to the roster. It fails with ErrAlreadyJoined when the
// user is a member and ErrActivityFull when no slot is left. Callers retrying a
// join may treat ErrAlreadyJoined as success.
func (m *RosterManager) Join(ctx context.Context, activityID, userID string) (*Activity, error) {
	if err := validateIDs(activityID, userID); err != nil {
		return nil, err
	}

	return m.store.Update(ctx, activityID, func(a *Activity) error {
		if a.Deleted {
			return apperr.NotFound("activity not found")
		}
		if a.HasMember(userID) {
			return apperr.New(apperr.ErrAlreadyJoined, "user has already joined this activity")
		}
		if a.IsFull() {
			return apperr.New(apperr.ErrActivityFull, "activity is full")
		}
		a.Roster = append(a.Roster, userID)
		a.UpdatedAt = m.now()
		return nil
	})
}

// Leave removes userID from the roster, keeping the order of the others.
func (m *RosterManager) Leave(ctx context.Context, activityID, userID string) (*Activity, error) {
	if err := validateIDs(activityID, userID); err != nil {
		return nil, err
	}

	return m.store.Update(ctx, activityID, func(a *Activity) error {
		if a.Deleted {
			return apperr.NotFound("activity not found")
		}
		i := slices.Index(a.Roster, userID)
		if i < 0 {
			return apperr.New(apperr.ErrNotJoined, "user has not joined this activity")
		}
		a.Roster = slices.Delete(a.Roster, i, i+1)
		a.UpdatedAt = m.now()
		return nil
	})
}

func validateIDs(activityID, userID string) error {
	if strings.TrimSpace(activityID) == "" {
		return apperr.MissingParameter("activity id is required")
	}
	if strings.TrimSpace(userID) == "" {
		return apperr.MissingParameter("userId is required")
	}
	return nil
}
