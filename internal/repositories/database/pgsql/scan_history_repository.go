package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
)

type PgxScanHistoryRepository struct {
	db *pgxpool.Pool
}

func newPgxScanHistoryRepository(db *pgxpool.Pool) portsrepo.ScanHistoryRepository {
	return &PgxScanHistoryRepository{db: db}
}

var _ portsrepo.ScanHistoryRepository = (*PgxScanHistoryRepository)(nil)

func (r *PgxScanHistoryRepository) SaveScan(ctx context.Context, entry domain.ScanEntry) (*domain.ScanEntry, error) {
	details := entry.DetectionDetails
	if details == "" {
		details = "{}"
	}

	query := `
        INSERT INTO scan_history (user_id, material_label, confidence, image_url, detection_details)
        VALUES ($1, $2, $3, $4, $5::jsonb)
        RETURNING id, created_at;
    `
	stored := entry
	stored.DetectionDetails = details
	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.MaterialLabel,
		entry.Confidence,
		entry.ImageURL,
		details,
	).Scan(&stored.ScanID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save scan entry: %w", err)
	}
	return &stored, nil
}

func (r *PgxScanHistoryRepository) ListScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT id, user_id, material_label, confidence, image_url, detection_details::text, created_at
        FROM scan_history
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan history: %w", err)
	}
	defer rows.Close()

	entries := []domain.ScanEntry{}
	for rows.Next() {
		var e domain.ScanEntry
		err := rows.Scan(
			&e.ScanID,
			&e.UserID,
			&e.MaterialLabel,
			&e.Confidence,
			&e.ImageURL,
			&e.DetectionDetails,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating scan history rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxScanHistoryRepository) CountScans(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM scan_history WHERE user_id = $1;`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count scan history: %w", err)
	}
	return total, nil
}
