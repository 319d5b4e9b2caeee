package activities

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

const activityColumns = `id, title, sport, location, lat, lng, capacity, roster, created_by, created_at, updated_at, deleted`

func scanActivity(row pgx.Row, a *Activity) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Sport,
		&a.Location,
		&a.Lat,
		&a.Lng,
		&a.Capacity,
		&a.Roster,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Deleted,
	)
}

func (r *Repository) Create(ctx context.Context, a *Activity) error {
	query := `
		INSERT INTO activities (title, sport, location, lat, lng, capacity, roster, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if a.Roster == nil {
		a.Roster = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		a.Title,
		a.Sport,
		a.Location,
		a.Lat,
		a.Lng,
		a.Capacity,
		a.Roster,
		a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return apperr.FromStorage("creating activity", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var a Activity
	err := scanActivity(r.db.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("activity not found")
		}
		return nil, apperr.FromStorage("loading activity", err)
	}
	return &a, nil
}

func (r *Repository) List(ctx context.Context, filter Filter) ([]Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE NOT deleted
		  AND ($1 = '' OR lower(sport) = lower($1))
		ORDER BY created_at, id`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, filter.Sport)
	if err != nil {
		return nil, apperr.FromStorage("listing activities", err)
	}
	defer rows.Close()

	list := []Activity{}
	for rows.Next() {
		var a Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, apperr.FromStorage("scanning activity", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage("listing activities", err)
	}
	return list, nil
}

// Update locks the activity row for the length of the transaction, so two
// joins racing for the last slot are validated one after the other.
func (r *Repository) Update(ctx context.Context, id string, fn MutateFunc) (*Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, apperr.FromStorage("starting transaction", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	var a Activity
	err = scanActivity(tx.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1 FOR UPDATE`, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("activity not found")
		}
		return nil, apperr.FromStorage("locking activity", err)
	}

	if err := fn(&a); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE activities
		SET title = $1, sport = $2, location = $3, lat = $4, lng = $5,
		    capacity = $6, roster = $7, deleted = $8, updated_at = $9
		WHERE id = $10`,
		a.Title, a.Sport, a.Location, a.Lat, a.Lng,
		a.Capacity, a.Roster, a.Deleted, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return nil, apperr.FromStorage(fmt.Sprintf("updating activity %s", id), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.FromStorage("committing activity update", err)
	}
	return &a, nil
}
