package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"teamup/internal/domain/activities"
	"teamup/internal/domain/discovery"
	"teamup/internal/domain/geo"
	"teamup/internal/domain/venues"
)

//go:embed data/seed.json
var seedJSON []byte

type venueSeed struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

type reviewSeed struct {
	VenueName   string `json:"venueName"`
	AuthorID    string `json:"authorId"`
	AuthorEmail string `json:"authorEmail"`
	Score       int    `json:"score"`
	Comment     string `json:"comment"`
}

type Data struct {
	Venues     []venueSeed           `json:"venues"`
	Activities []activities.Activity `json:"activities"`
	Reviews    []reviewSeed          `json:"reviews"`
}

// Default returns the bundled Melbourne sample data.
func Default() (*Data, error) {
	var d Data
	if err := json.Unmarshal(seedJSON, &d); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}
	return &d, nil
}

type Seeder struct {
	store    activities.Store
	service  *discovery.Service
	registry *venues.Registry
	logger   *zap.SugaredLogger
}

func NewSeeder(store activities.Store, service *discovery.Service, registry *venues.Registry, logger *zap.SugaredLogger) *Seeder {
	return &Seeder{store: store, service: service, registry: registry, logger: logger}
}

// Load inserts d when there are no activities and no venues yet. Each
// collection is checked on its own, so a partially seeded store is topped up.
func (s *Seeder) Load(ctx context.Context, d *Data) error {
	catalog, err := s.registry.Catalog(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		s.logger.Info("seeding venues")
		for _, v := range d.Venues {
			var coords *geo.Point
			if p, ok := geo.PointOf(v.Lat, v.Lng); ok {
				coords = &p
			}
			if _, err := s.registry.GetOrCreate(ctx, v.Name, coords); err != nil {
				return fmt.Errorf("seeding venue %q: %w", v.Name, err)
			}
		}

		for _, rv := range d.Reviews {
			_, err := s.registry.RecordReview(ctx, rv.VenueName, venues.Review{
				AuthorID:    rv.AuthorID,
				AuthorEmail: rv.AuthorEmail,
				Score:       rv.Score,
				Comment:     rv.Comment,
			})
			if err != nil {
				return fmt.Errorf("seeding review for %q: %w", rv.VenueName, err)
			}
		}
	}

	existing, err := s.store.List(ctx, activities.Filter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("seeding activities")
	for i := range d.Activities {
		a := d.Activities[i]
		a.ID = ""
		a.Roster = nil
		if _, err := s.service.Create(ctx, &a); err != nil {
			return fmt.Errorf("seeding activity %q: %w", a.Title, err)
		}
	}
	s.logger.Infow("seed data loaded", "venues", len(d.Venues), "activities", len(d.Activities), "reviews", len(d.Reviews))
	return nil
}
