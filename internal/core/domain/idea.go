package domain

// Idea is an upcycling project suggestion tied to a scannable material.
type Idea struct {
	IdeaID      string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Material    string   `json:"material"`
	Steps       []string `json:"steps,omitempty"`
	Video       string   `json:"video,omitempty"`
}
