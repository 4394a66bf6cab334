package model

import (
	"time"
)

// The five recognised reactions, in ascending score order.
const (
	EmojiMid         = "😐"
	EmojiMild        = "😊"
	EmojiSolid       = "😄"
	EmojiBrainMelt   = "🤯"
	EmojiLiquidation = "🔥"
)

// EmojiScores maps each reaction to its ordinal rating.
var EmojiScores = map[string]int{
	EmojiMid:         1,
	EmojiMild:        2,
	EmojiSolid:       3,
	EmojiBrainMelt:   4,
	EmojiLiquidation: 5,
}

func ValidEmoji(emoji string) bool {
	_, ok := EmojiScores[emoji]
	return ok
}

type Vote struct {
	ID        int       `json:"id"`
	ContentID int       `json:"contentId"`
	UserID    string    `json:"userId"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"createdAt"`
}

type VoteRequest struct {
	Emoji string `json:"emoji" validate:"required,emoji"`
}
