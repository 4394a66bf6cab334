package websockets

import (
	"time"
)

// Event is one entry on the live activity feed.
type Event struct {
	Type      string    `json:"type"` // "new_content" or "vote"
	ContentID int       `json:"content_id"`
	Emoji     string    `json:"emoji,omitempty"`
	At        time.Time `json:"at"`
}
