package domain

// BBox is a bounding box normalized to 0..1 image coordinates.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detection is a single classification: label, confidence and optional box.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	BBox       *BBox   `json:"bbox,omitempty"`
}

// ClassificationResult is what a classifier backend returns for one image.
type ClassificationResult struct {
	Best       Detection   `json:"best"`
	Detections []Detection `json:"detections"`
}
