package venues

import (
	"context"
	"strings"
	"time"

	"teamup/internal/domain/geo"
)

var QueryTimeoutDuration = time.Second * 5

// Venue is a playground or field that activities take place at.
type Venue struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalizedName"`
	Lat            *float64  `json:"lat"`
	Lng            *float64  `json:"lng"`
	Reviews        []Review  `json:"reviews"`
	AverageRating  *float64  `json:"averageRating"` // nil until the first review
	ReviewCount    int       `json:"reviewCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Point reports the venue coordinates, if both are known.
func (v *Venue) Point() (geo.Point, bool) {
	return geo.PointOf(v.Lat, v.Lng)
}

// Review is keyed by (VenueID, AuthorID); a resubmission replaces the old one.
type Review struct {
	VenueID     string    `json:"venueId"`
	AuthorID    string    `json:"authorId"`
	AuthorEmail string    `json:"authorEmail"`
	Score       int       `json:"score"` // 1-5
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Store interface {
	// List returns every venue in catalog order with its reviews attached.
	List(ctx context.Context) ([]Venue, error)
	GetByNormalizedName(ctx context.Context, normalized string) (*Venue, error)
	// CreateIfAbsent inserts v unless a venue with the same normalized name
	// exists, in which case the existing venue is returned and created is false.
	CreateIfAbsent(ctx context.Context, v *Venue) (venue *Venue, created bool, err error)
	UpsertReview(ctx context.Context, review *Review) error
	GetReviews(ctx context.Context, venueID string) ([]Review, error)
	UpdateRating(ctx context.Context, venueID string, average *float64, count int) error
}

// Normalize turns a display name into the venue uniqueness key.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
