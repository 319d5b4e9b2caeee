package activities

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamup/internal/apperr"
)

func seedActivity(t *testing.T, store Store, capacity int, roster ...string) *Activity {
	t.Helper()
	a := &Activity{
		Title:     "Sunday futsal",
		Sport:     "futsal",
		Location:  "Fawkner Park",
		Capacity:  capacity,
		Roster:    roster,
		CreatedBy: "organiser",
	}
	require.NoError(t, store.Create(context.Background(), a))
	return a
}

func TestJoin(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and stamps updatedAt", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 3, "u1")

		updated, err := m.Join(ctx, a.ID, "u2")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, updated.Roster)
		assert.False(t, updated.UpdatedAt.Before(a.UpdatedAt))
	})

	t.Run("already joined", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 3, "u1")

		_, err := m.Join(ctx, a.ID, "u1")
		assert.ErrorIs(t, err, apperr.ErrAlreadyJoined)
	})

	t.Run("full", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 2, "u1", "u2")

		_, err := m.Join(ctx, a.ID, "u3")
		assert.ErrorIs(t, err, apperr.ErrActivityFull)

		stored, err := store.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, stored.Roster)
	})

	t.Run("member of a full activity sees AlreadyJoined", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 1, "u1")

		_, err := m.Join(ctx, a.ID, "u1")
		assert.ErrorIs(t, err, apperr.ErrAlreadyJoined)
	})

	t.Run("unknown or deleted activity", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)

		_, err := m.Join(ctx, "missing", "u1")
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		a := seedActivity(t, store, 2)
		_, err = store.Update(ctx, a.ID, func(a *Activity) error {
			a.Deleted = true
			return nil
		})
		require.NoError(t, err)

		_, err = m.Join(ctx, a.ID, "u1")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("missing user id", func(t *testing.T) {
		m := NewRosterManager(NewMemoryStore())
		_, err := m.Join(ctx, "a1", " ")
		assert.ErrorIs(t, err, apperr.ErrMissingParameter)
	})
}

func TestLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and keeps order", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 5, "u1", "u2", "u3")

		updated, err := m.Leave(ctx, a.ID, "u2")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u3"}, updated.Roster)
	})

	t.Run("not joined", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 5, "u1")

		_, err := m.Leave(ctx, a.ID, "u9")
		assert.ErrorIs(t, err, apperr.ErrNotJoined)
	})

	t.Run("full activity accepts leave", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewRosterManager(store)
		a := seedActivity(t, store, 2, "u1", "u2")

		updated, err := m.Leave(ctx, a.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"u2"}, updated.Roster)
		assert.False(t, updated.IsFull())
	})
}

func TestJoinLeaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewRosterManager(store)

	for _, roster := range [][]string{nil, {"u1"}, {"u3", "u1", "u2"}} {
		a := seedActivity(t, store, 4, roster...)
		before, err := store.GetByID(ctx, a.ID)
		require.NoError(t, err)

		_, err = m.Join(ctx, a.ID, "newcomer")
		require.NoError(t, err)
		after, err := m.Leave(ctx, a.ID, "newcomer")
		require.NoError(t, err)

		assert.Equal(t, before.Roster, after.Roster)
	}
}

func TestConcurrentJoinsRespectCapacity(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct{ capacity, extra int }{{1, 1}, {5, 3}, {10, 40}} {
		t.Run(fmt.Sprintf("capacity %d plus %d", tc.capacity, tc.extra), func(t *testing.T) {
			store := NewMemoryStore()
			m := NewRosterManager(store)
			a := seedActivity(t, store, tc.capacity)

			var joined, full, other atomic.Int32
			var wg sync.WaitGroup
			start := make(chan struct{})
			for i := 0; i < tc.capacity+tc.extra; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					_, err := m.Join(ctx, a.ID, fmt.Sprintf("user-%d", i))
					switch {
					case err == nil:
						joined.Add(1)
					case errors.Is(err, apperr.ErrActivityFull):
						full.Add(1)
					default:
						other.Add(1)
					}
				}(i)
			}
			close(start)
			wg.Wait()

			assert.Equal(t, int32(tc.capacity), joined.Load())
			assert.Equal(t, int32(tc.extra), full.Load())
			assert.Zero(t, other.Load())

			stored, err := store.GetByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Len(t, stored.Roster, tc.capacity)
			require.NoError(t, stored.Validate())
		})
	}
}

func TestConcurrentJoinsAcrossActivities(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewRosterManager(store)

	ids := make([]string, 8)
	for i := range ids {
		ids[i] = seedActivity(t, store, 3).ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		for u := 0; u < 5; u++ {
			wg.Add(1)
			go func(id string, u int) {
				defer wg.Done()
				_, _ = m.Join(ctx, id, fmt.Sprintf("user-%d", u))
			}(id, u)
		}
	}
	wg.Wait()

	for _, id := range ids {
		a, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Len(t, a.Roster, 3)
	}
}
