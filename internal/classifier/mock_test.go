package classifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upcyclehq/recycle_scan_api/internal/classifier"
)

func TestMock_Classify(t *testing.T) {
	m := classifier.NewMock(42)

	result, err := m.Classify(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	require.NotEmpty(t, result.Detections)

	// The best pick always comes from the detection set.
	found := false
	for _, d := range result.Detections {
		if d.Label == result.Best.Label && d.Confidence == result.Best.Confidence {
			found = true
		}
	}
	assert.True(t, found)

	for _, d := range result.Detections {
		assert.Greater(t, d.Confidence, 0.0)
		assert.LessOrEqual(t, d.Confidence, 1.0)
	}
}

func TestMock_Deterministic(t *testing.T) {
	a := classifier.NewMock(7)
	b := classifier.NewMock(7)

	ra, err := a.Classify(context.Background(), "img")
	require.NoError(t, err)
	rb, err := b.Classify(context.Background(), "img")
	require.NoError(t, err)

	assert.Equal(t, ra.Best, rb.Best)
}
