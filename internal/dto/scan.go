package dto

import (
	"encoding/json"
	"time"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// SaveScanRequest is the body for POST /scan-history. Confidence is a pointer
// so an omitted value can be told apart from a legitimate 0. DetectionDetails
// accepts either a JSON object or a pre-serialized string.
type SaveScanRequest struct {
	MaterialLabel    string          `json:"materialLabel"`
	Confidence       *float64        `json:"confidence"`
	ImageURL         *string         `json:"imageUrl"`
	DetectionDetails json.RawMessage `json:"detectionDetails"`
	UserID           string          `json:"userId"`
}

// ScanRow mirrors the stored row shape the client consumes (snake_case keys,
// as the original API returned rows directly).
type ScanRow struct {
	ID            string    `json:"id"`
	MaterialLabel string    `json:"material_label"`
	Confidence    float64   `json:"confidence"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToScanRow converts a domain.ScanEntry to its wire shape.
func ToScanRow(e *domain.ScanEntry) ScanRow {
	return ScanRow{
		ID:            e.ScanID,
		MaterialLabel: e.MaterialLabel,
		Confidence:    e.Confidence,
		ImageURL:      e.ImageURL,
		CreatedAt:     e.CreatedAt,
	}
}

// ListScansParams defines query parameters for GET /scan-history.
type ListScansParams struct {
	UserID string `form:"userId"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// ListScansResponse wraps a history page with the total for pagination.
type ListScansResponse struct {
	Scans []ScanRow `json:"scans"`
	Total int64     `json:"total"`
}

// ToListScansResponse converts a page of entries plus the total count.
func ToListScansResponse(entries []domain.ScanEntry, total int64) ListScansResponse {
	rows := make([]ScanRow, len(entries))
	for i := range entries {
		rows[i] = ToScanRow(&entries[i])
	}
	return ListScansResponse{Scans: rows, Total: total}
}
