package services

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// IdeaSvcFacade serves the static upcycling idea catalog.
type IdeaSvcFacade interface {
	// ListIdeas returns all ideas, optionally filtered by material.
	ListIdeas(ctx context.Context, material string) []domain.Idea

	// GetIdea returns a single idea or apperrors.ErrNotFound.
	GetIdea(ctx context.Context, ideaID string) (*domain.Idea, error)
}
