package store

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/dopameter/dopameter_api/internal/model"
)

// MemStore keeps everything in process memory. It is the reference
// implementation: nothing survives a restart.
type MemStore struct {
	mu sync.RWMutex

	users     map[string]model.User
	content   map[int]model.Content
	votes     map[int]model.Vote
	favorites map[int]model.Favorite
	chartData map[string]model.ChartData

	contentIDCounter  int
	voteIDCounter     int
	favoriteIDCounter int

	// voteOrder preserves ledger insertion order per content so the
	// top-emoji tie-break stays first-seen.
	voteOrder map[int][]int

	now func() time.Time
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:             make(map[string]model.User),
		content:           make(map[int]model.Content),
		votes:             make(map[int]model.Vote),
		favorites:         make(map[int]model.Favorite),
		chartData:         make(map[string]model.ChartData),
		voteOrder:         make(map[int][]int),
		contentIDCounter:  1,
		voteIDCounter:     1,
		favoriteIDCounter: 1,
		now:               time.Now,
	}
}

// Users

func (s *MemStore) GetUser(_ context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *MemStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email != nil && *user.Email == email {
			return user, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *MemStore) CreateUser(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = user
	return user, nil
}

func (s *MemStore) UpsertUser(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
		user.UpdatedAt = s.now()
		s.users[user.ID] = user
		return user, nil
	}

	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = user
	return user, nil
}

// Content

func (s *MemStore) GetAllContent(_ context.Context) ([]model.EnrichedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allEnrichedLocked(), nil
}

func (s *MemStore) GetContentByID(_ context.Context, id int) (model.EnrichedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.content[id]
	if !ok {
		return model.EnrichedContent{}, ErrContentNotFound
	}
	return enrich(c, s.votesForLocked(id)), nil
}

func (s *MemStore) GetTrendingContent(_ context.Context, limit int) ([]model.EnrichedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.allEnrichedLocked()
	sortTrending(items)
	return truncate(items, limit), nil
}

func (s *MemStore) GetLatestContent(_ context.Context, limit int) ([]model.EnrichedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.allEnrichedLocked()
	sortLatest(items)
	return truncate(items, limit), nil
}

func (s *MemStore) CreateContent(_ context.Context, userID, contentType, url string) (model.EnrichedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Content{
		ID:        s.contentIDCounter,
		UserID:    userID,
		Type:      contentType,
		URL:       url,
		CreatedAt: s.now(),
	}
	s.contentIDCounter++
	s.content[c.ID] = c

	return enrich(c, nil), nil
}

func (s *MemStore) ResetContent(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content = make(map[int]model.Content)
	s.votes = make(map[int]model.Vote)
	s.favorites = make(map[int]model.Favorite)
	s.voteOrder = make(map[int][]int)

	s.contentIDCounter = 1
	s.voteIDCounter = 1
	s.favoriteIDCounter = 1
	return nil
}

// Votes

func (s *MemStore) GetVotesByContentID(_ context.Context, contentID int) ([]model.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.votesForLocked(contentID), nil
}

func (s *MemStore) CreateVote(_ context.Context, contentID int, userID, emoji string) (model.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ValidEmoji(emoji) {
		return model.Vote{}, ErrInvalidEmoji
	}
	if _, ok := s.content[contentID]; !ok {
		return model.Vote{}, ErrContentNotFound
	}

	v := model.Vote{
		ID:        s.voteIDCounter,
		ContentID: contentID,
		UserID:    userID,
		Emoji:     emoji,
		CreatedAt: s.now(),
	}
	s.voteIDCounter++
	s.votes[v.ID] = v
	s.voteOrder[contentID] = append(s.voteOrder[contentID], v.ID)
	return v, nil
}

// Favorites

func (s *MemStore) GetFavoritesByUserID(_ context.Context, userID string) ([]model.FavoriteWithContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.FavoriteWithContent
	for _, fav := range s.favorites {
		if fav.UserID != userID {
			continue
		}
		c, ok := s.content[fav.ContentID]
		if !ok {
			continue
		}
		out = append(out, model.FavoriteWithContent{
			Favorite: fav,
			Content:  enrich(c, s.votesForLocked(c.ID)),
		})
	}
	return out, nil
}

func (s *MemStore) SaveFavorite(_ context.Context, userID string, contentID int) (model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.content[contentID]; !ok {
		return model.Favorite{}, ErrContentNotFound
	}

	for _, fav := range s.favorites {
		if fav.UserID == userID && fav.ContentID == contentID {
			return fav, nil
		}
	}

	fav := model.Favorite{
		ID:        s.favoriteIDCounter,
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: s.now(),
	}
	s.favoriteIDCounter++
	s.favorites[fav.ID] = fav
	return fav, nil
}

func (s *MemStore) RemoveFavorite(_ context.Context, userID string, contentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, fav := range s.favorites {
		if fav.UserID == userID && fav.ContentID == contentID {
			delete(s.favorites, id)
			return nil
		}
	}
	return nil
}

// Leaderboard and chart

func (s *MemStore) GetLeaderboard(_ context.Context, timeFrame string) ([]model.RankedContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff, err := leaderboardCutoff(timeFrame, s.now())
	if err != nil {
		return nil, err
	}
	return rankLeaderboard(s.allEnrichedLocked(), cutoff), nil
}

func (s *MemStore) GetChartData(_ context.Context, timeFrame string) (model.ChartData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.chartData[timeFrame]; ok {
		return data, nil
	}

	data, err := generateChartData(timeFrame, s.now())
	if err != nil {
		return model.ChartData{}, err
	}
	s.chartData[timeFrame] = data
	return data, nil
}

// SeedDemoData loads a handful of sample content items with random votes so
// a fresh in-memory instance has something to show.
func (s *MemStore) SeedDemoData(ownerID string) {
	sampleURLs := []string{
		"https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?auto=format&fit=crop&w=800&h=500",
		"https://images.unsplash.com/photo-1559757175-5700dde675bc?auto=format&fit=crop&w=800&h=500",
		"https://images.unsplash.com/photo-1550684848-fac1c5b4e853?auto=format&fit=crop&w=800&h=500",
		"https://images.unsplash.com/photo-1501386761578-eac5c94b800a?auto=format&fit=crop&w=800&h=500",
		"https://images.unsplash.com/photo-1531427186611-ecfd6d936c79?auto=format&fit=crop&w=800&h=500",
		"https://images.unsplash.com/photo-1566837945700-30057527ade0?auto=format&fit=crop&w=800&h=500",
	}
	contentTypes := []string{
		model.ContentTypeMeme, model.ContentTypeImage,
		model.ContentTypeTweet, model.ContentTypeVideo,
	}
	emojis := []string{
		model.EmojiMid, model.EmojiMild, model.EmojiSolid,
		model.EmojiBrainMelt, model.EmojiLiquidation,
	}

	ctx := context.Background()
	for i, url := range sampleURLs {
		c, _ := s.CreateContent(ctx, ownerID, contentTypes[i%len(contentTypes)], url)

		voteCount := 10 + rand.Intn(40)
		for v := 0; v < voteCount; v++ {
			_, _ = s.CreateVote(ctx, c.ID, ownerID, emojis[rand.Intn(len(emojis))])
		}
	}

	_, _ = s.SaveFavorite(ctx, ownerID, 1)
	_, _ = s.SaveFavorite(ctx, ownerID, 3)
}

// callers must hold at least a read lock

func (s *MemStore) allEnrichedLocked() []model.EnrichedContent {
	items := make([]model.EnrichedContent, 0, len(s.content))
	for _, c := range s.content {
		items = append(items, enrich(c, s.votesForLocked(c.ID)))
	}
	return items
}

func (s *MemStore) votesForLocked(contentID int) []model.Vote {
	ids := s.voteOrder[contentID]
	if len(ids) == 0 {
		return nil
	}
	votes := make([]model.Vote, 0, len(ids))
	for _, id := range ids {
		votes = append(votes, s.votes[id])
	}
	return votes
}
