package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dopameter/dopameter_api/internal/db"
	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/jackc/pgx/v5"
)

// PostgresStore persists to Postgres through pgx. Enrichment still re-reads
// the votes table on every read, matching MemStore.
type PostgresStore struct {
	db *db.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(database *db.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

// Init creates the tables when they do not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id VARCHAR(100) PRIMARY KEY,
        username VARCHAR(50) NOT NULL,
        email VARCHAR(100),
        first_name VARCHAR(100),
        last_name VARCHAR(100),
        profile_image_url TEXT,
        auth_provider VARCHAR(20) NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE TABLE IF NOT EXISTS content (
        id SERIAL PRIMARY KEY,
        user_id VARCHAR(100) NOT NULL,
        type VARCHAR(20) NOT NULL,
        url TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE TABLE IF NOT EXISTS votes (
        id SERIAL PRIMARY KEY,
        content_id INTEGER NOT NULL REFERENCES content(id),
        user_id VARCHAR(100) NOT NULL,
        emoji TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE TABLE IF NOT EXISTS favorites (
        id SERIAL PRIMARY KEY,
        user_id VARCHAR(100) NOT NULL,
        content_id INTEGER NOT NULL REFERENCES content(id),
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE(user_id, content_id)
    );

    CREATE TABLE IF NOT EXISTS chart_data (
        id SERIAL PRIMARY KEY,
        time_frame VARCHAR(10) NOT NULL UNIQUE,
        labels TEXT[] NOT NULL,
        core_dopamine INTEGER[] NOT NULL,
        liquidation_moments INTEGER[] NOT NULL,
        chill_potent INTEGER[] NOT NULL,
        fun_fast_hits INTEGER[] NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );
    `
	_, err := s.db.Pool().Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Users

func (s *PostgresStore) GetUser(ctx context.Context, id string) (model.User, error) {
	query := `
        SELECT id, username, email, first_name, last_name, profile_image_url,
               auth_provider, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	return s.scanUser(s.db.Pool().QueryRow(ctx, query, id))
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
        SELECT id, username, email, first_name, last_name, profile_image_url,
               auth_provider, created_at, updated_at
        FROM users
        WHERE username = $1
    `
	return s.scanUser(s.db.Pool().QueryRow(ctx, query, username))
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
        SELECT id, username, email, first_name, last_name, profile_image_url,
               auth_provider, created_at, updated_at
        FROM users
        WHERE email = $1
    `
	return s.scanUser(s.db.Pool().QueryRow(ctx, query, email))
}

func (s *PostgresStore) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query := `
        INSERT INTO users (id, username, email, first_name, last_name, profile_image_url, auth_provider)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at
    `
	err := s.db.Pool().QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.ProfileImageURL, user.AuthProvider,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) UpsertUser(ctx context.Context, user model.User) (model.User, error) {
	query := `
        INSERT INTO users (id, username, email, first_name, last_name, profile_image_url, auth_provider)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            username = EXCLUDED.username,
            email = EXCLUDED.email,
            first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            profile_image_url = EXCLUDED.profile_image_url,
            updated_at = NOW()
        RETURNING created_at, updated_at
    `
	err := s.db.Pool().QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.ProfileImageURL, user.AuthProvider,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("upserting user: %w", err)
	}
	return user, nil
}

// Content

func (s *PostgresStore) GetAllContent(ctx context.Context) ([]model.EnrichedContent, error) {
	contents, err := s.listContent(ctx)
	if err != nil {
		return nil, err
	}

	votesByContent, err := s.votesGrouped(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.EnrichedContent, 0, len(contents))
	for _, c := range contents {
		items = append(items, enrich(c, votesByContent[c.ID]))
	}
	return items, nil
}

func (s *PostgresStore) GetContentByID(ctx context.Context, id int) (model.EnrichedContent, error) {
	query := `SELECT id, user_id, type, url, created_at FROM content WHERE id = $1`

	var c model.Content
	err := s.db.Pool().QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Type, &c.URL, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.EnrichedContent{}, ErrContentNotFound
	}
	if err != nil {
		return model.EnrichedContent{}, fmt.Errorf("getting content: %w", err)
	}

	votes, err := s.GetVotesByContentID(ctx, id)
	if err != nil {
		return model.EnrichedContent{}, err
	}
	return enrich(c, votes), nil
}

func (s *PostgresStore) GetTrendingContent(ctx context.Context, limit int) ([]model.EnrichedContent, error) {
	items, err := s.GetAllContent(ctx)
	if err != nil {
		return nil, err
	}
	sortTrending(items)
	return truncate(items, limit), nil
}

func (s *PostgresStore) GetLatestContent(ctx context.Context, limit int) ([]model.EnrichedContent, error) {
	items, err := s.GetAllContent(ctx)
	if err != nil {
		return nil, err
	}
	sortLatest(items)
	return truncate(items, limit), nil
}

func (s *PostgresStore) CreateContent(ctx context.Context, userID, contentType, url string) (model.EnrichedContent, error) {
	query := `
        INSERT INTO content (user_id, type, url)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	c := model.Content{UserID: userID, Type: contentType, URL: url}
	err := s.db.Pool().QueryRow(ctx, query, userID, contentType, url).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return model.EnrichedContent{}, fmt.Errorf("creating content: %w", err)
	}
	return enrich(c, nil), nil
}

func (s *PostgresStore) ResetContent(ctx context.Context) error {
	_, err := s.db.Pool().Exec(ctx, `TRUNCATE favorites, votes, content RESTART IDENTITY`)
	if err != nil {
		return fmt.Errorf("resetting content: %w", err)
	}
	return nil
}

// Votes

func (s *PostgresStore) GetVotesByContentID(ctx context.Context, contentID int) ([]model.Vote, error) {
	query := `
        SELECT id, content_id, user_id, emoji, created_at
        FROM votes
        WHERE content_id = $1
        ORDER BY id
    `
	rows, err := s.db.Pool().Query(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("getting votes: %w", err)
	}
	defer rows.Close()

	var votes []model.Vote
	for rows.Next() {
		var v model.Vote
		if err := rows.Scan(&v.ID, &v.ContentID, &v.UserID, &v.Emoji, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (s *PostgresStore) CreateVote(ctx context.Context, contentID int, userID, emoji string) (model.Vote, error) {
	if !model.ValidEmoji(emoji) {
		return model.Vote{}, ErrInvalidEmoji
	}

	var exists bool
	err := s.db.Pool().QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM content WHERE id = $1)`, contentID).Scan(&exists)
	if err != nil {
		return model.Vote{}, fmt.Errorf("checking content: %w", err)
	}
	if !exists {
		return model.Vote{}, ErrContentNotFound
	}

	query := `
        INSERT INTO votes (content_id, user_id, emoji)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	v := model.Vote{ContentID: contentID, UserID: userID, Emoji: emoji}
	err = s.db.Pool().QueryRow(ctx, query, contentID, userID, emoji).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return model.Vote{}, fmt.Errorf("creating vote: %w", err)
	}
	return v, nil
}

// Favorites

func (s *PostgresStore) GetFavoritesByUserID(ctx context.Context, userID string) ([]model.FavoriteWithContent, error) {
	query := `
        SELECT f.id, f.user_id, f.content_id, f.created_at
        FROM favorites f
        WHERE f.user_id = $1
        ORDER BY f.id
    `
	rows, err := s.db.Pool().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("getting favorites: %w", err)
	}
	defer rows.Close()

	var favs []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ContentID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []model.FavoriteWithContent
	for _, f := range favs {
		content, err := s.GetContentByID(ctx, f.ContentID)
		if errors.Is(err, ErrContentNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, model.FavoriteWithContent{Favorite: f, Content: content})
	}
	return out, nil
}

func (s *PostgresStore) SaveFavorite(ctx context.Context, userID string, contentID int) (model.Favorite, error) {
	var fav model.Favorite

	err := s.db.RunInTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM content WHERE id = $1)`, contentID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrContentNotFound
		}

		lookup := `
            SELECT id, user_id, content_id, created_at
            FROM favorites
            WHERE user_id = $1 AND content_id = $2
        `
		err := tx.QueryRow(ctx, lookup, userID, contentID).Scan(
			&fav.ID, &fav.UserID, &fav.ContentID, &fav.CreatedAt,
		)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		insert := `
            INSERT INTO favorites (user_id, content_id)
            VALUES ($1, $2)
            RETURNING id, created_at
        `
		fav.UserID = userID
		fav.ContentID = contentID
		return tx.QueryRow(ctx, insert, userID, contentID).Scan(&fav.ID, &fav.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return model.Favorite{}, ErrContentNotFound
		}
		return model.Favorite{}, fmt.Errorf("saving favorite: %w", err)
	}
	return fav, nil
}

func (s *PostgresStore) RemoveFavorite(ctx context.Context, userID string, contentID int) error {
	_, err := s.db.Pool().Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND content_id = $2`,
		userID, contentID,
	)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// Leaderboard and chart

func (s *PostgresStore) GetLeaderboard(ctx context.Context, timeFrame string) ([]model.RankedContent, error) {
	cutoff, err := leaderboardCutoff(timeFrame, time.Now())
	if err != nil {
		return nil, err
	}

	items, err := s.GetAllContent(ctx)
	if err != nil {
		return nil, err
	}
	return rankLeaderboard(items, cutoff), nil
}

func (s *PostgresStore) GetChartData(ctx context.Context, timeFrame string) (model.ChartData, error) {
	if !model.ValidChartTimeFrame(timeFrame) {
		return model.ChartData{}, ErrBadTimeFrame
	}

	query := `
        SELECT time_frame, labels, core_dopamine, liquidation_moments, chill_potent, fun_fast_hits
        FROM chart_data
        WHERE time_frame = $1
    `
	var data model.ChartData
	err := s.db.Pool().QueryRow(ctx, query, timeFrame).Scan(
		&data.TimeFrame, &data.Labels, &data.CoreDopamine,
		&data.LiquidationMoments, &data.ChillPotent, &data.FunFastHits,
	)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.ChartData{}, fmt.Errorf("getting chart data: %w", err)
	}

	data, err = generateChartData(timeFrame, time.Now())
	if err != nil {
		return model.ChartData{}, err
	}

	insert := `
        INSERT INTO chart_data (time_frame, labels, core_dopamine, liquidation_moments, chill_potent, fun_fast_hits)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (time_frame) DO NOTHING
    `
	if _, err := s.db.Pool().Exec(ctx, insert,
		data.TimeFrame, data.Labels, data.CoreDopamine,
		data.LiquidationMoments, data.ChillPotent, data.FunFastHits,
	); err != nil {
		return model.ChartData{}, fmt.Errorf("storing chart data: %w", err)
	}
	return data, nil
}

// helpers

func (s *PostgresStore) listContent(ctx context.Context) ([]model.Content, error) {
	rows, err := s.db.Pool().Query(ctx, `SELECT id, user_id, type, url, created_at FROM content ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}
	defer rows.Close()

	var contents []model.Content
	for rows.Next() {
		var c model.Content
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.URL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning content: %w", err)
		}
		contents = append(contents, c)
	}
	return contents, rows.Err()
}

// votesGrouped loads the whole ledger in insertion order, grouped by content.
func (s *PostgresStore) votesGrouped(ctx context.Context) (map[int][]model.Vote, error) {
	rows, err := s.db.Pool().Query(ctx, `SELECT id, content_id, user_id, emoji, created_at FROM votes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing votes: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int][]model.Vote)
	for rows.Next() {
		var v model.Vote
		if err := rows.Scan(&v.ID, &v.ContentID, &v.UserID, &v.Emoji, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning vote: %w", err)
		}
		grouped[v.ContentID] = append(grouped[v.ContentID], v)
	}
	return grouped, rows.Err()
}

func (s *PostgresStore) scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.ProfileImageURL, &user.AuthProvider, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("scanning user: %w", err)
	}
	return user, nil
}
