package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teamup/internal/domain/activities"
	"teamup/internal/domain/discovery"
	"teamup/internal/domain/geo"
	"teamup/internal/domain/venues"
)

func newSeeder() (*Seeder, *activities.MemoryStore, *venues.Registry, *discovery.Service) {
	logger := zap.NewNop().Sugar()
	store := activities.NewMemoryStore()
	registry := venues.NewRegistry(venues.NewMemoryStore(), logger)
	service := discovery.NewService(store, registry)
	return NewSeeder(store, service, registry, logger), store, registry, service
}

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, d.Venues)
	assert.NotEmpty(t, d.Activities)
	for _, a := range d.Activities {
		assert.NoError(t, a.Validate(), a.Title)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	s, store, registry, service := newSeeder()
	d, err := Default()
	require.NoError(t, err)

	require.NoError(t, s.Load(ctx, d))

	list, err := store.List(ctx, activities.Filter{})
	require.NoError(t, err)
	assert.Len(t, list, len(d.Activities))

	catalog, err := registry.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, len(d.Venues))

	for _, v := range catalog {
		if v.Name == "Princes Park" {
			require.NotNil(t, v.AverageRating)
			assert.Equal(t, 4.5, *v.AverageRating)
			assert.Equal(t, 2, v.ReviewCount)
		}
	}

	res, err := service.Nearby(ctx, geo.Point{Lat: -37.8136, Lng: 144.9631}, 50)
	require.NoError(t, err)
	assert.Equal(t, len(d.Activities)-1, res.Total, "Yarra Park has no coordinates")
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, store, _, _ := newSeeder()
	d, err := Default()
	require.NoError(t, err)

	require.NoError(t, s.Load(ctx, d))
	require.NoError(t, s.Load(ctx, d))

	list, err := store.List(ctx, activities.Filter{})
	require.NoError(t, err)
	assert.Len(t, list, len(d.Activities))
}
