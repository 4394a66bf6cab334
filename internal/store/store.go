package store

import (
	"context"
	"errors"

	"github.com/dopameter/dopameter_api/internal/model"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidEmoji    = errors.New("emoji is not a recognised reaction")
	ErrBadTimeFrame    = errors.New("unknown time frame")
)

// DefaultListLimit is applied when a ranking view is asked for a
// non-positive number of items.
const DefaultListLimit = 6

// Store is the persistence boundary for the whole service. MemStore keeps
// everything in process memory; PostgresStore runs against pgx. Both derive
// vote statistics from the vote ledger at read time, so reads are always
// consistent with the ledger.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpsertUser(ctx context.Context, user model.User) (model.User, error)

	// Content
	GetAllContent(ctx context.Context) ([]model.EnrichedContent, error)
	GetContentByID(ctx context.Context, id int) (model.EnrichedContent, error)
	GetTrendingContent(ctx context.Context, limit int) ([]model.EnrichedContent, error)
	GetLatestContent(ctx context.Context, limit int) ([]model.EnrichedContent, error)
	CreateContent(ctx context.Context, userID, contentType, url string) (model.EnrichedContent, error)
	ResetContent(ctx context.Context) error

	// Votes
	GetVotesByContentID(ctx context.Context, contentID int) ([]model.Vote, error)
	CreateVote(ctx context.Context, contentID int, userID, emoji string) (model.Vote, error)

	// Favorites
	GetFavoritesByUserID(ctx context.Context, userID string) ([]model.FavoriteWithContent, error)
	SaveFavorite(ctx context.Context, userID string, contentID int) (model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID string, contentID int) error

	// Leaderboard and chart
	GetLeaderboard(ctx context.Context, timeFrame string) ([]model.RankedContent, error)
	GetChartData(ctx context.Context, timeFrame string) (model.ChartData, error)
}
