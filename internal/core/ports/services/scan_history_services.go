package services

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
)

// ScanHistorySvcFacade covers the append-only scan history.
type ScanHistorySvcFacade interface {
	// AppendScan stores a classification result for the authenticated user
	// and returns the stored row.
	AppendScan(ctx context.Context, userID string, req dto.SaveScanRequest) (*domain.ScanEntry, error)

	// ListScans returns a newest-first page plus the user's total entry count.
	ListScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanEntry, int64, error)
}
