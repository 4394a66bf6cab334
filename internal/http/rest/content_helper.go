package rest

import (
	"context"

	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/dopameter/dopameter_api/internal/store"
	"github.com/dopameter/dopameter_api/util"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/pkg/errors"
)

func (api *API) ListContentHelper(ctx context.Context) ([]model.EnrichedContent, string, string, error) {
	content, err := api.Store.GetAllContent(ctx)
	if err != nil {
		return nil, values.Error, "failed to get content", err
	}
	return content, values.Success, "Content retrieved successfully", nil
}

func (api *API) TrendingContentHelper(ctx context.Context, limit int) ([]model.EnrichedContent, string, string, error) {
	content, err := api.Store.GetTrendingContent(ctx, limit)
	if err != nil {
		return nil, values.Error, "failed to get trending content", err
	}
	return content, values.Success, "Trending content retrieved successfully", nil
}

func (api *API) LatestContentHelper(ctx context.Context, limit int) ([]model.EnrichedContent, string, string, error) {
	content, err := api.Store.GetLatestContent(ctx, limit)
	if err != nil {
		return nil, values.Error, "failed to get latest content", err
	}
	return content, values.Success, "Latest content retrieved successfully", nil
}

func (api *API) GetContentHelper(ctx context.Context, id int) (model.EnrichedContent, string, string, error) {
	content, err := api.Store.GetContentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			return model.EnrichedContent{}, values.NotFound, "content not found", err
		}
		return model.EnrichedContent{}, values.Error, "failed to get content", err
	}
	return content, values.Success, "Content retrieved successfully", nil
}

func (api *API) ImportContentHelper(ctx context.Context, userID string, req model.ImportContentRequest) (model.EnrichedContent, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.EnrichedContent{}, values.BadRequestBody, "invalid import request", err
	}
	if !model.ImportableContentType(req.Type) {
		return model.EnrichedContent{}, values.BadRequestBody, "type must be image or video", errors.Errorf("type %s is not importable", req.Type)
	}

	content, err := api.Store.CreateContent(ctx, userID, req.Type, req.URL)
	if err != nil {
		return model.EnrichedContent{}, values.Error, "failed to import content", err
	}
	return content, values.Created, "Content imported successfully", nil
}

func (api *API) VoteHelper(ctx context.Context, contentID int, userID string, req model.VoteRequest) (model.Vote, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.Vote{}, values.BadRequestBody, "invalid vote request", err
	}

	vote, err := api.Store.CreateVote(ctx, contentID, userID, req.Emoji)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrContentNotFound):
			return model.Vote{}, values.NotFound, "content not found", err
		case errors.Is(err, store.ErrInvalidEmoji):
			return model.Vote{}, values.BadRequestBody, "unrecognised emoji", err
		}
		return model.Vote{}, values.Error, "failed to record vote", err
	}
	return vote, values.Created, "Vote recorded successfully", nil
}

func (api *API) SaveFavoriteHelper(ctx context.Context, userID string, contentID int) (model.Favorite, string, string, error) {
	favorite, err := api.Store.SaveFavorite(ctx, userID, contentID)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			return model.Favorite{}, values.NotFound, "content not found", err
		}
		return model.Favorite{}, values.Error, "failed to save favorite", err
	}
	return favorite, values.Success, "Content saved to favorites", nil
}

func (api *API) RemoveFavoriteHelper(ctx context.Context, userID string, contentID int) (string, string, error) {
	if err := api.Store.RemoveFavorite(ctx, userID, contentID); err != nil {
		return values.Error, "failed to remove favorite", err
	}
	return values.Success, "Content removed from favorites", nil
}

func (api *API) ListFavoritesHelper(ctx context.Context, userID string) ([]model.FavoriteWithContent, string, string, error) {
	favorites, err := api.Store.GetFavoritesByUserID(ctx, userID)
	if err != nil {
		return nil, values.Error, "failed to get favorites", err
	}
	return favorites, values.Success, "Favorites retrieved successfully", nil
}
