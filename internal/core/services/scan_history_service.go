package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
)

type scanHistoryService struct {
	scanRepo portsrepo.ScanHistoryRepository
}

// NewScanHistoryService creates the scan-history service.
func NewScanHistoryService(scanRepo portsrepo.ScanHistoryRepository) portssvc.ScanHistorySvcFacade {
	return &scanHistoryService{scanRepo: scanRepo}
}

var _ portssvc.ScanHistorySvcFacade = (*scanHistoryService)(nil)

func (s *scanHistoryService) AppendScan(ctx context.Context, userID string, req dto.SaveScanRequest) (*domain.ScanEntry, error) {
	label := strings.TrimSpace(req.MaterialLabel)
	if label == "" {
		return nil, fmt.Errorf("materialLabel is required: %w", apperrors.ErrValidation)
	}
	if req.Confidence == nil {
		return nil, fmt.Errorf("confidence is required: %w", apperrors.ErrValidation)
	}

	entry := domain.ScanEntry{
		UserID:           userID,
		MaterialLabel:    label,
		Confidence:       *req.Confidence,
		ImageURL:         req.ImageURL,
		DetectionDetails: normalizeDetails(req.DetectionDetails),
	}

	saved, err := s.scanRepo.SaveScan(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save scan: %w", err)
	}
	return saved, nil
}

func (s *scanHistoryService) ListScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanEntry, int64, error) {
	entries, err := s.scanRepo.ListScans(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scans: %w", err)
	}
	total, err := s.scanRepo.CountScans(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return entries, total, nil
}

// normalizeDetails accepts a JSON object, a JSON string holding serialized
// JSON, or nothing, and always yields a JSON document for the jsonb column.
func normalizeDetails(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if strings.TrimSpace(asString) == "" {
			return "{}"
		}
		return asString
	}
	return string(raw)
}
