package model

import (
	"time"
)

// Content types accepted on upload and import.
const (
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeMeme  = "meme"
	ContentTypeTweet = "tweet"
	ContentTypeOther = "other"
)

func ValidContentType(t string) bool {
	switch t {
	case ContentTypeImage, ContentTypeVideo, ContentTypeMeme, ContentTypeTweet, ContentTypeOther:
		return true
	}
	return false
}

// ImportableContentType reports whether t may be used on the import
// endpoint, which only takes direct image or video links.
func ImportableContentType(t string) bool {
	return t == ContentTypeImage || t == ContentTypeVideo
}

type Content struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnrichedContent is a content record plus vote statistics derived from the
// vote ledger at read time. It is never stored.
type EnrichedContent struct {
	Content
	TotalVotes    int     `json:"totalVotes"`
	AverageRating float64 `json:"averageRating"`
	TopEmoji      string  `json:"topEmoji"`
}

// RankedContent is a leaderboard row. Rank is the 1-based position after
// sorting by average rating, then total votes.
type RankedContent struct {
	EnrichedContent
	Rank int `json:"rank"`
}

// URL is any non-empty string; local references and data URIs are fine.
type ImportContentRequest struct {
	URL  string `json:"url" validate:"required"`
	Type string `json:"type" validate:"required,contenttype"`
}
