package dto

// DetectRequest is the body for POST /detect: a base64-encoded image.
type DetectRequest struct {
	Image string `json:"image" binding:"required"`
}
