package repositories

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// ScanHistoryRepository owns the immutable scan-history log.
type ScanHistoryRepository interface {
	// SaveScan inserts an entry and returns the stored row with the
	// server-assigned ID and timestamp.
	SaveScan(ctx context.Context, entry domain.ScanEntry) (*domain.ScanEntry, error)

	// ListScans returns the user's entries newest-first.
	ListScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanEntry, error)

	// CountScans returns the total number of entries for the user.
	CountScans(ctx context.Context, userID string) (int64, error)
}
