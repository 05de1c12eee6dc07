// Package classifier provides the pluggable material-classification strategy.
// The backend is picked once at startup from configuration; call sites only
// see the Classifier interface.
package classifier

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// Classifier turns a base64-encoded image into a set of material detections.
type Classifier interface {
	Classify(ctx context.Context, imageBase64 string) (*domain.ClassificationResult, error)
}
