package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"teamup/internal/apperr"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

const venueColumns = `id, name, normalized_name, lat, lng, average_rating, review_count, created_at, updated_at`

func scanVenue(row pgx.Row, v *Venue) error {
	return row.Scan(
		&v.ID,
		&v.Name,
		&v.NormalizedName,
		&v.Lat,
		&v.Lng,
		&v.AverageRating,
		&v.ReviewCount,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
}

// List returns all venues ordered by creation, each with its reviews.
func (r *Repository) List(ctx context.Context) ([]Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY created_at, id`)
	if err != nil {
		return nil, apperr.FromStorage("listing venues", err)
	}
	defer rows.Close()

	var list []Venue
	index := make(map[string]int)
	for rows.Next() {
		var v Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, apperr.FromStorage("scanning venue", err)
		}
		v.Reviews = []Review{}
		index[v.ID] = len(list)
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage("listing venues", err)
	}

	reviews, err := r.queryReviews(ctx, `
		SELECT venue_id, author_id, author_email, score, comment, created_at, updated_at
		FROM venue_reviews
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	for _, rv := range reviews {
		if i, ok := index[rv.VenueID]; ok {
			list[i].Reviews = append(list[i].Reviews, rv)
		}
	}
	return list, nil
}

func (r *Repository) GetByNormalizedName(ctx context.Context, normalized string) (*Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var v Venue
	err := scanVenue(r.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE normalized_name = $1`, normalized), &v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("venue not found")
		}
		return nil, apperr.FromStorage("loading venue", err)
	}

	v.Reviews, err = r.getReviews(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateIfAbsent relies on the unique index on normalized_name, so two
// concurrent calls for the same name cannot both insert.
func (r *Repository) CreateIfAbsent(ctx context.Context, v *Venue) (*Venue, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO venues (name, normalized_name, lat, lng)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (normalized_name) DO NOTHING
		RETURNING ` + venueColumns

	var created Venue
	err := scanVenue(r.db.QueryRow(ctx, query, v.Name, v.NormalizedName, v.Lat, v.Lng), &created)
	if err == nil {
		created.Reviews = []Review{}
		return &created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, apperr.FromStorage("creating venue", err)
	}

	existing, err := r.GetByNormalizedName(ctx, v.NormalizedName)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repository) UpsertReview(ctx context.Context, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO venue_reviews (venue_id, author_id, author_email, score, comment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (venue_id, author_id) DO UPDATE
		SET author_email = EXCLUDED.author_email,
		    score        = EXCLUDED.score,
		    comment      = EXCLUDED.comment,
		    updated_at   = NOW()
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		review.VenueID,
		review.AuthorID,
		review.AuthorEmail,
		review.Score,
		review.Comment,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return apperr.FromStorage("saving review", err)
	}
	return nil
}

func (r *Repository) GetReviews(ctx context.Context, venueID string) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return r.getReviews(ctx, venueID)
}

func (r *Repository) getReviews(ctx context.Context, venueID string) ([]Review, error) {
	return r.queryReviews(ctx, `
		SELECT venue_id, author_id, author_email, score, comment, created_at, updated_at
		FROM venue_reviews
		WHERE venue_id = $1
		ORDER BY created_at`, venueID)
}

func (r *Repository) queryReviews(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromStorage("loading reviews", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.VenueID,
			&rv.AuthorID,
			&rv.AuthorEmail,
			&rv.Score,
			&rv.Comment,
			&rv.CreatedAt,
			&rv.UpdatedAt,
		); err != nil {
			return nil, apperr.FromStorage("scanning review", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage("loading reviews", err)
	}
	return reviews, nil
}

func (r *Repository) UpdateRating(ctx context.Context, venueID string, average *float64, count int) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE venues
		SET average_rating = $1, review_count = $2, updated_at = NOW()
		WHERE id = $3`, average, count, venueID)
	if err != nil {
		return apperr.FromStorage("updating rating", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("venue %s not found", venueID))
	}
	return nil
}
