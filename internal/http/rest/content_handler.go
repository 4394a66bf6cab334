package rest

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/dopameter/dopameter_api/util"
	"github.com/dopameter/dopameter_api/util/tracing"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (api *API) ContentRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListContent))
	mux.Method(http.MethodGet, "/trending", Handler(api.TrendingContent))
	mux.Method(http.MethodGet, "/latest", Handler(api.LatestContent))
	mux.Method(http.MethodGet, "/{contentID}", Handler(api.GetContent))

	mux.Group(func(r chi.Router) {
		r.Use(api.ResolveActor)
		r.Method(http.MethodPost, "/upload", Handler(api.UploadContent))
		r.Method(http.MethodPost, "/import", Handler(api.ImportContent))
		r.Method(http.MethodPost, "/{contentID}/vote", Handler(api.VoteOnContent))
		r.Method(http.MethodPost, "/{contentID}/save", Handler(api.SaveContent))
		r.Method(http.MethodPost, "/{contentID}/unsave", Handler(api.UnsaveContent))
		r.Method(http.MethodPost, "/{contentID}/share", Handler(api.ShareContent))
	})
	return mux
}

// limitParam reads the optional ?limit query. Zero means the store
// default applies.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func contentIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "contentID"))
	if err != nil {
		return 0, errors.Wrap(err, "content id must be numeric")
	}
	return id, nil
}

func (api *API) ListContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	content, status, message, err := api.ListContentHelper(r.Context())
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       content,
	}
}

func (api *API) TrendingContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	content, status, message, err := api.TrendingContentHelper(r.Context(), limitParam(r))
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       content,
	}
}

func (api *API) LatestContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	content, status, message, err := api.LatestContentHelper(r.Context(), limitParam(r))
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       content,
	}
}

func (api *API) GetContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := contentIDParam(r)
	if err != nil {
		return respondWithError(err, "invalid content id", values.BadRequestBody, &tc)
	}

	content, status, message, err := api.GetContentHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       content,
	}
}

// UploadContent accepts a multipart file, stores it locally or on
// Cloudinary when configured, and records the content entry.
func (api *API) UploadContent(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	r.Body = http.MaxBytesReader(w, r.Body, api.Config.MaxUploadBytes)
	if err := r.ParseMultipartForm(api.Config.MaxUploadBytes); err != nil {
		return respondWithError(err, "upload too large or malformed", values.BadRequestBody, &tc)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return respondWithError(err, "file field is required", values.BadRequestBody, &tc)
	}
	defer file.Close()

	mimetype := header.Header.Get("Content-Type")
	if !util.AllowedUploadMime(mimetype) {
		return respondWithError(errors.Errorf("unsupported mime type %s", mimetype),
			"only image and video uploads are allowed", values.BadRequestBody, &tc)
	}

	fileName := util.UploadFileName(header.Filename)
	localPath := filepath.Join(api.Config.UploadDir, fileName)

	dst, err := os.Create(localPath)
	if err != nil {
		return respondWithError(err, "failed to store upload", values.Error, &tc)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(localPath)
		return respondWithError(err, "failed to store upload", values.Error, &tc)
	}
	dst.Close()

	url := "/uploads/" + fileName
	if api.Deps.Cloudinary != nil {
		secureURL, uploadErr := api.Deps.Cloudinary.UploadMedia(r.Context(), localPath, "dopameter")
		if uploadErr != nil {
			os.Remove(localPath)
			return respondWithError(uploadErr, "failed to upload media", values.Error, &tc)
		}
		os.Remove(localPath)
		url = secureURL
	}

	contentType := r.FormValue("type")
	if !model.ValidContentType(contentType) {
		contentType = util.ContentTypeFromMime(mimetype)
	}

	content, err := api.Store.CreateContent(r.Context(), userID, contentType, url)
	if err != nil {
		return respondWithError(err, "failed to create content", values.Error, &tc)
	}

	api.Deps.ActivityFeed.Publish("new_content", content.ID, "")

	return &ServerResponse{
		Message:    "Content uploaded successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       content,
	}
}

// ImportContent records content hosted elsewhere by URL.
func (api *API) ImportContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.ImportContentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	content, status, message, err := api.ImportContentHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	api.Deps.ActivityFeed.Publish("new_content", content.ID, "")

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       content,
	}
}

func (api *API) VoteOnContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	id, err := contentIDParam(r)
	if err != nil {
		return respondWithError(err, "invalid content id", values.BadRequestBody, &tc)
	}

	var req model.VoteRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	vote, status, message, err := api.VoteHelper(r.Context(), id, userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	api.Deps.ActivityFeed.Publish("vote", id, vote.Emoji)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       vote,
	}
}

func (api *API) SaveContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	id, err := contentIDParam(r)
	if err != nil {
		return respondWithError(err, "invalid content id", values.BadRequestBody, &tc)
	}

	_, status, message, err := api.SaveFavoriteHelper(r.Context(), userID, id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       map[string]bool{"saved": true},
	}
}

func (api *API) UnsaveContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	id, err := contentIDParam(r)
	if err != nil {
		return respondWithError(err, "invalid content id", values.BadRequestBody, &tc)
	}

	status, message, err := api.RemoveFavoriteHelper(r.Context(), userID, id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       map[string]bool{"saved": false},
	}
}

// ShareContent acknowledges a share. Nothing is persisted.
func (api *API) ShareContent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	if _, err := contentIDParam(r); err != nil {
		return respondWithError(err, "invalid content id", values.BadRequestBody, &tc)
	}

	return &ServerResponse{
		Message:    "Content shared",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
