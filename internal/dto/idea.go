package dto

import "github.com/upcyclehq/recycle_scan_api/internal/core/domain"

// ListIdeasResponse wraps the idea catalog.
type ListIdeasResponse struct {
	Ideas []domain.Idea `json:"ideas"`
}
