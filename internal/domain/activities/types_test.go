package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamup/internal/apperr"
)

func TestValidate(t *testing.T) {
	lat, lng, bad := -37.8, 144.9, 200.0

	valid := func() Activity {
		return Activity{Title: "Hoops", Sport: "basketball", Location: "Carlton Gardens", Capacity: 4}
	}

	tests := []struct {
		name   string
		mutate func(a *Activity)
		want   error
	}{
		{"valid", func(a *Activity) {}, nil},
		{"with coordinates", func(a *Activity) { a.Lat, a.Lng = &lat, &lng }, nil},
		{"missing title", func(a *Activity) { a.Title = " " }, apperr.ErrMissingParameter},
		{"missing location", func(a *Activity) { a.Location = "" }, apperr.ErrMissingParameter},
		{"zero capacity", func(a *Activity) { a.Capacity = 0 }, apperr.ErrInvalidArgument},
		{"half coordinates", func(a *Activity) { a.Lat = &lat }, apperr.ErrInvalidArgument},
		{"out of range", func(a *Activity) { a.Lat, a.Lng = &bad, &lng }, apperr.ErrInvalidArgument},
		{"over capacity", func(a *Activity) { a.Capacity = 1; a.Roster = []string{"a", "b"} }, apperr.ErrInvalidArgument},
		{"duplicate member", func(a *Activity) { a.Roster = []string{"a", "a"} }, apperr.ErrInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := valid()
			tc.mutate(&a)
			err := a.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, sport := range []string{"futsal", "tennis", "Futsal"} {
		require.NoError(t, store.Create(ctx, &Activity{Title: sport, Sport: sport, Location: "x", Capacity: 2}))
	}
	hidden := &Activity{Title: "gone", Sport: "futsal", Location: "x", Capacity: 2, Deleted: true}
	require.NoError(t, store.Create(ctx, hidden))

	all, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "futsal", all[0].Title)
	assert.Equal(t, "tennis", all[1].Title)

	futsal, err := store.List(ctx, Filter{Sport: "FUTSAL"})
	require.NoError(t, err)
	assert.Len(t, futsal, 2)

	got, err := store.GetByID(ctx, hidden.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := &Activity{Title: "t", Sport: "s", Location: "l", Capacity: 3, Roster: []string{"u1"}}
	require.NoError(t, store.Create(ctx, a))

	got, err := store.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.Roster[0] = "mutated"

	again, err := store.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, again.Roster)
}

func TestUpdateErrorLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := &Activity{Title: "t", Sport: "s", Location: "l", Capacity: 3}
	require.NoError(t, store.Create(ctx, a))

	_, err := store.Update(ctx, a.ID, func(a *Activity) error {
		a.Roster = append(a.Roster, "u1")
		return apperr.InvalidArgument("nope")
	})
	require.Error(t, err)

	got, err := store.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Roster)
}
