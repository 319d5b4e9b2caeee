package venues

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"teamup/internal/apperr"
	"teamup/internal/domain/geo"
)

// Registry owns venue creation and review aggregation.
type Registry struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewRegistry(store Store, logger *zap.SugaredLogger) *Registry {
	return &Registry{store: store, logger: logger}
}

// Catalog re-reads the full venue list from the store on every call.
func (r *Registry) Catalog(ctx context.Context) ([]Venue, error) {
	return r.store.List(ctx)
}

// GetOrCreate returns the venue whose normalized name matches name, creating
// it with coords when none exists. Coordinates of an existing venue are left
// untouched.
func (r *Registry) GetOrCreate(ctx context.Context, name string, coords *geo.Point) (*Venue, error) {
	key := Normalize(name)
	if key == "" {
		return nil, apperr.InvalidArgument("venue name is required")
	}

	v := &Venue{
		Name:           strings.TrimSpace(name),
		NormalizedName: key,
	}
	if coords != nil {
		lat, lng := coords.Lat, coords.Lng
		v.Lat, v.Lng = &lat, &lng
	}

	venue, created, err := r.store.CreateIfAbsent(ctx, v)
	if err != nil {
		return nil, err
	}
	if created {
		r.logger.Infow("created venue", "id", venue.ID, "name", venue.Name)
	}
	return venue, nil
}

// RecordReview stores review against the named venue, replacing any earlier
// review by the same author, and recomputes the venue rating from the full
// review set. A concurrent review for the same venue may land between the
// upsert and the recount; the next review settles it.
func (r *Registry) RecordReview(ctx context.Context, venueName string, review Review) (*Venue, error) {
	if review.Score < 1 || review.Score > 5 {
		return nil, apperr.InvalidArgument("score must be between 1 and 5")
	}
	if strings.TrimSpace(review.AuthorID) == "" {
		return nil, apperr.MissingParameter("authorId is required")
	}

	venue, err := r.store.GetByNormalizedName(ctx, Normalize(venueName))
	if err != nil {
		return nil, err
	}

	review.VenueID = venue.ID
	if err := r.store.UpsertReview(ctx, &review); err != nil {
		return nil, err
	}

	reviews, err := r.store.GetReviews(ctx, venue.ID)
	if err != nil {
		return nil, err
	}

	average, count := Rating(reviews)
	if err := r.store.UpdateRating(ctx, venue.ID, average, count); err != nil {
		return nil, err
	}

	venue.Reviews = reviews
	venue.AverageRating = average
	venue.ReviewCount = count
	return venue, nil
}

// Rating is the mean score rounded to one decimal, nil when there are no reviews.
func Rating(reviews []Review) (*float64, int) {
	if len(reviews) == 0 {
		return nil, 0
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Score
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return &avg, len(reviews)
}
