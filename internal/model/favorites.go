package model

import (
	"time"
)

type Favorite struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	ContentID int       `json:"contentId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteWithContent joins a favorite with its enriched content.
type FavoriteWithContent struct {
	Favorite
	Content EnrichedContent `json:"content"`
}
