package classifier

import (
	"context"
	"math/rand"
	"sync"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// mockBBox matches the fixed box the simulated client classifier returned.
var mockBBox = domain.BBox{X: 0.25, Y: 0.28, Width: 0.5, Height: 0.35}

var mockDetections = []domain.Detection{
	{Label: "Wood", Confidence: 0.95},
	{Label: "Plastic Bottle", Confidence: 0.92},
	{Label: "Glass Jar", Confidence: 0.87},
	{Label: "Aluminum Can", Confidence: 0.9},
	{Label: "Cardboard", Confidence: 0.85},
	{Label: "Paper", Confidence: 0.82},
}

// Mock returns a fixed detection set with a randomly chosen best match.
// Useful for development and demos when no detection service is deployed.
type Mock struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Classifier = (*Mock)(nil)

// NewMock creates a mock classifier seeded from the given source.
func NewMock(seed int64) *Mock {
	return &Mock{rng: rand.New(rand.NewSource(seed))}
}

// Classify ignores the image and returns the canned detection set.
func (m *Mock) Classify(_ context.Context, _ string) (*domain.ClassificationResult, error) {
	detections := make([]domain.Detection, len(mockDetections))
	for i, d := range mockDetections {
		bbox := mockBBox
		d.BBox = &bbox
		detections[i] = d
	}

	m.mu.Lock()
	best := detections[m.rng.Intn(len(detections))]
	m.mu.Unlock()

	return &domain.ClassificationResult{Best: best, Detections: detections}, nil
}
