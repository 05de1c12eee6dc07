package classifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upcyclehq/recycle_scan_api/internal/classifier"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

func TestRemoteDetector_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/detect", r.URL.Path)

		var body struct {
			Image string `json:"image"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "aW1hZ2U=", body.Image)

		json.NewEncoder(w).Encode(map[string]any{
			"detections": []domain.Detection{
				{Label: "Cardboard", Confidence: 0.61},
				{Label: "Plastic Bottle", Confidence: 0.94},
			},
		})
	}))
	defer server.Close()

	detector := classifier.NewRemoteDetector(server.URL, server.Client())

	result, err := detector.Classify(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)

	// Detections come back sorted by confidence; the best is the first.
	assert.Equal(t, "Plastic Bottle", result.Best.Label)
	assert.Len(t, result.Detections, 2)
	assert.Equal(t, "Plastic Bottle", result.Detections[0].Label)
}

func TestRemoteDetector_EmptyDetections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"detections": []domain.Detection{}})
	}))
	defer server.Close()

	detector := classifier.NewRemoteDetector(server.URL, server.Client())

	result, err := detector.Classify(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", result.Best.Label)
	assert.Zero(t, result.Best.Confidence)
}

func TestRemoteDetector_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	detector := classifier.NewRemoteDetector(server.URL, server.Client())

	_, err := detector.Classify(context.Background(), "aW1hZ2U=")
	assert.Error(t, err)
}
