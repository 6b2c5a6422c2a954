package readview

import "time"

// ReadView is the renderable form of a stored article: its content
// segmented into chapters and sanitized. This is the only article
// representation that may be handed to a renderer.
type ReadView struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Chapters  []Chapter `json:"chapters"`
	FetchedAt time.Time `json:"fetchedAt"`
}
