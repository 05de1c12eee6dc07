package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// RemoteDetector calls an external detection service speaking the
// POST /v1/detect contract: {"image": "<base64>"} in, {"detections": [...]}
// out. Detections are sorted by confidence; the best is the first, or
// Unknown/0 when the service found nothing.
type RemoteDetector struct {
	baseURL string
	client  *http.Client
}

var _ Classifier = (*RemoteDetector)(nil)

// NewRemoteDetector creates a client for the detection service at baseURL.
// A nil httpClient uses a default with a 30s timeout (model inference is slow).
func NewRemoteDetector(baseURL string, httpClient *http.Client) *RemoteDetector {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &RemoteDetector{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

type detectRequest struct {
	Image string `json:"image"`
}

type detectResponse struct {
	Detections []domain.Detection `json:"detections"`
}

// Classify sends the image to the detection service.
func (r *RemoteDetector) Classify(ctx context.Context, imageBase64 string) (*domain.ClassificationResult, error) {
	body, err := json.Marshal(detectRequest{Image: imageBase64})
	if err != nil {
		return nil, fmt.Errorf("failed to encode detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/detect", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detection service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detection service returned status %d", resp.StatusCode)
	}

	var decoded detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode detect response: %w", err)
	}

	detections := decoded.Detections
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Confidence > detections[j].Confidence
	})

	best := domain.Detection{Label: "Unknown", Confidence: 0}
	if len(detections) > 0 {
		best = detections[0]
	}

	return &domain.ClassificationResult{Best: best, Detections: detections}, nil
}
