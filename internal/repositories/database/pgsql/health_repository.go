package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
)

type PgxHealthRepository struct {
	db *pgxpool.Pool
}

func newPgxHealthRepository(db *pgxpool.Pool) portsrepo.HealthRepository {
	return &PgxHealthRepository{db: db}
}

var _ portsrepo.HealthRepository = (*PgxHealthRepository)(nil)

func (r *PgxHealthRepository) Check(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.db.QueryRow(ctx, `SELECT now();`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("database unavailable: %w", err)
	}
	return now, nil
}
