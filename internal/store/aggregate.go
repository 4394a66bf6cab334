package store

import (
	"sort"
	"time"

	"github.com/dopameter/dopameter_api/internal/model"
)

// enrich derives vote statistics for one content record from its votes.
// averageRating is the mean of the per-emoji scores, 0 with no votes.
// topEmoji is the most frequent reaction; when counts tie, the emoji seen
// first in the ledger wins. 😐 is the default for unvoted content.
func enrich(c model.Content, votes []model.Vote) model.EnrichedContent {
	total := len(votes)

	counts := make(map[string]int)
	var order []string
	sum := 0

	for _, v := range votes {
		if counts[v.Emoji] == 0 {
			order = append(order, v.Emoji)
		}
		counts[v.Emoji]++
		sum += model.EmojiScores[v.Emoji]
	}

	avg := 0.0
	if total > 0 {
		avg = float64(sum) / float64(total)
	}

	topEmoji := model.EmojiMid
	maxCount := 0
	for _, emoji := range order {
		if counts[emoji] > maxCount {
			maxCount = counts[emoji]
			topEmoji = emoji
		}
	}

	return model.EnrichedContent{
		Content:       c,
		TotalVotes:    total,
		AverageRating: avg,
		TopEmoji:      topEmoji,
	}
}

func sortTrending(items []model.EnrichedContent) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalVotes != items[j].TotalVotes {
			return items[i].TotalVotes > items[j].TotalVotes
		}
		return items[i].AverageRating > items[j].AverageRating
	})
}

func sortLatest(items []model.EnrichedContent) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func sortByRating(items []model.EnrichedContent) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].AverageRating != items[j].AverageRating {
			return items[i].AverageRating > items[j].AverageRating
		}
		return items[i].TotalVotes > items[j].TotalVotes
	})
}

func truncate(items []model.EnrichedContent, limit int) []model.EnrichedContent {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// leaderboardCutoff maps a leaderboard time frame to its lookback boundary.
func leaderboardCutoff(timeFrame string, now time.Time) (time.Time, error) {
	switch timeFrame {
	case model.TimeFrameDaily:
		return now.AddDate(0, 0, -1), nil
	case model.TimeFrameWeekly:
		return now.AddDate(0, 0, -7), nil
	case model.TimeFrameMonthly:
		return now.AddDate(0, -1, 0), nil
	}
	return time.Time{}, ErrBadTimeFrame
}

// rankLeaderboard filters enriched content to the window, orders it by
// rating then votes, and assigns contiguous 1-based ranks.
func rankLeaderboard(items []model.EnrichedContent, cutoff time.Time) []model.RankedContent {
	var window []model.EnrichedContent
	for _, item := range items {
		if !item.CreatedAt.Before(cutoff) {
			window = append(window, item)
		}
	}

	sortByRating(window)

	ranked := make([]model.RankedContent, len(window))
	for i, item := range window {
		ranked[i] = model.RankedContent{EnrichedContent: item, Rank: i + 1}
	}
	return ranked
}
