package domain

import "time"

// ScanEntry is one classification result saved to a user's history.
// Entries are immutable once created and retrieved newest-first.
type ScanEntry struct {
	ScanID           string    `json:"id"`
	UserID           string    `json:"userId"`
	MaterialLabel    string    `json:"materialLabel"`
	Confidence       float64   `json:"confidence"`
	ImageURL         *string   `json:"imageUrl,omitempty"`
	DetectionDetails string    `json:"detectionDetails,omitempty"` // opaque JSON blob
	CreatedAt        time.Time `json:"createdAt"`
}
