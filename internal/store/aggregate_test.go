package store

import (
	"math"
	"testing"
	"time"

	"github.com/dopameter/dopameter_api/internal/model"
)

func votesFor(contentID int, emojis ...string) []model.Vote {
	votes := make([]model.Vote, len(emojis))
	for i, e := range emojis {
		votes[i] = model.Vote{ID: i + 1, ContentID: contentID, UserID: "u", Emoji: e}
	}
	return votes
}

func TestEnrich(t *testing.T) {
	c := model.Content{ID: 1, Type: model.ContentTypeMeme}

	testCases := []struct {
		name       string
		emojis     []string
		totalVotes int
		avgRating  float64
		topEmoji   string
	}{
		{"no votes", nil, 0, 0, model.EmojiMid},
		{"single vote", []string{model.EmojiLiquidation}, 1, 5, model.EmojiLiquidation},
		{"mixed votes", []string{model.EmojiLiquidation, model.EmojiLiquidation, model.EmojiMid}, 3, 11.0 / 3.0, model.EmojiLiquidation},
		{"tie goes to first seen", []string{model.EmojiSolid, model.EmojiBrainMelt}, 2, 3.5, model.EmojiSolid},
		{"later tie does not displace", []string{model.EmojiMild, model.EmojiBrainMelt, model.EmojiBrainMelt, model.EmojiMild}, 4, 3, model.EmojiMild},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := enrich(c, votesFor(c.ID, tc.emojis...))

			if got.TotalVotes != tc.totalVotes {
				t.Errorf("TotalVotes = %d; want %d", got.TotalVotes, tc.totalVotes)
			}
			if math.Abs(got.AverageRating-tc.avgRating) > 1e-9 {
				t.Errorf("AverageRating = %v; want %v", got.AverageRating, tc.avgRating)
			}
			if got.TopEmoji != tc.topEmoji {
				t.Errorf("TopEmoji = %q; want %q", got.TopEmoji, tc.topEmoji)
			}
		})
	}
}

func TestSortTrending(t *testing.T) {
	items := []model.EnrichedContent{
		{Content: model.Content{ID: 1}, TotalVotes: 2, AverageRating: 5},
		{Content: model.Content{ID: 2}, TotalVotes: 8, AverageRating: 1},
		{Content: model.Content{ID: 3}, TotalVotes: 8, AverageRating: 4},
	}

	sortTrending(items)

	wantOrder := []int{3, 2, 1}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Errorf("position %d has ID %d; want %d", i, items[i].ID, want)
		}
	}
}

func TestSortLatest(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	items := []model.EnrichedContent{
		{Content: model.Content{ID: 1, CreatedAt: base}},
		{Content: model.Content{ID: 2, CreatedAt: base.Add(2 * time.Hour)}},
		{Content: model.Content{ID: 3, CreatedAt: base.Add(time.Hour)}},
	}

	sortLatest(items)

	wantOrder := []int{2, 3, 1}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Errorf("position %d has ID %d; want %d", i, items[i].ID, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	items := make([]model.EnrichedContent, 10)

	if got := len(truncate(items, 0)); got != DefaultListLimit {
		t.Errorf("zero limit returned %d items; want default %d", got, DefaultListLimit)
	}
	if got := len(truncate(items, 3)); got != 3 {
		t.Errorf("limit 3 returned %d items", got)
	}
	if got := len(truncate(items, 50)); got != 10 {
		t.Errorf("oversized limit returned %d items; want 10", got)
	}
}

func TestLeaderboardCutoff(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		timeFrame string
		want      time.Time
	}{
		{model.TimeFrameDaily, now.AddDate(0, 0, -1)},
		{model.TimeFrameWeekly, now.AddDate(0, 0, -7)},
		{model.TimeFrameMonthly, now.AddDate(0, -1, 0)},
	}
	for _, tc := range testCases {
		got, err := leaderboardCutoff(tc.timeFrame, now)
		if err != nil {
			t.Fatalf("leaderboardCutoff(%q) returned error %v", tc.timeFrame, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("leaderboardCutoff(%q) = %v; want %v", tc.timeFrame, got, tc.want)
		}
	}

	if _, err := leaderboardCutoff("yearly", now); err != ErrBadTimeFrame {
		t.Errorf("unknown time frame returned %v; want ErrBadTimeFrame", err)
	}
}

func TestRankLeaderboard(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cutoff := now.AddDate(0, 0, -1)

	items := []model.EnrichedContent{
		{Content: model.Content{ID: 1, CreatedAt: now.Add(-2 * time.Hour)}, TotalVotes: 4, AverageRating: 3},
		{Content: model.Content{ID: 2, CreatedAt: now.AddDate(0, 0, -3)}, TotalVotes: 9, AverageRating: 5},
		{Content: model.Content{ID: 3, CreatedAt: now.Add(-time.Hour)}, TotalVotes: 2, AverageRating: 4.5},
		{Content: model.Content{ID: 4, CreatedAt: now.Add(-3 * time.Hour)}, TotalVotes: 7, AverageRating: 4.5},
	}

	ranked := rankLeaderboard(items, cutoff)

	if len(ranked) != 3 {
		t.Fatalf("got %d ranked items; want 3 (stale content excluded)", len(ranked))
	}

	wantOrder := []int{4, 3, 1}
	for i, want := range wantOrder {
		if ranked[i].ID != want {
			t.Errorf("position %d has ID %d; want %d", i, ranked[i].ID, want)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("position %d has rank %d; want %d", i, ranked[i].Rank, i+1)
		}
	}
}
