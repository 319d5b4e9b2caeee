package storage

import (
	"context"

	"teamup/internal/domain/activities"
	"teamup/internal/domain/venues"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool       *pgxpool.Pool // nil for the in-memory driver
	Activities activities.Store
	Venues     venues.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:       db,
		Activities: activities.NewRepository(db),
		Venues:     venues.NewRepository(db),
	}
}

func NewMemoryContainer() *Container {
	return &Container{
		Activities: activities.NewMemoryStore(),
		Venues:     venues.NewMemoryStore(),
	}
}

// Ping checks the backing database. The in-memory driver is always reachable.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	return c.pool.Ping(ctx)
}

// Stats exposes pool statistics for expvar, or nil for the in-memory driver.
func (c *Container) Stats() any {
	if c.pool == nil {
		return nil
	}
	s := c.pool.Stat()
	return map[string]any{
		"acquired_conns": s.AcquiredConns(),
		"idle_conns":     s.IdleConns(),
		"total_conns":    s.TotalConns(),
		"max_conns":      s.MaxConns(),
		"acquire_count":  s.AcquireCount(),
	}
}
