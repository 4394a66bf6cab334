package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/dopameter/dopameter_api/internal/store"
	"github.com/dopameter/dopameter_api/util"
	"github.com/dopameter/dopameter_api/util/tracing"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/go-chi/chi/v5"
	"golang.org/x/oauth2"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/register", Handler(api.Register))
	mux.Method(http.MethodPost, "/login", Handler(api.Login))
	mux.Method(http.MethodPost, "/google/login", Handler(api.LoginWithGoogle))
	mux.Method(http.MethodPost, "/refresh", Handler(api.RefreshToken))
	mux.With(api.RequireLogin).Method(http.MethodGet, "/user", Handler(api.CurrentUser))
	return mux
}

func (api *API) Register(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	resp, status, message, err := api.RegisterUserHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       resp,
	}
}

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	resp, status, message, err := api.LoginUserHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       resp,
	}
}

// LoginWithGoogle exchanges a Google access token for a local session,
// upserting the user record each sign-in.
func (api *API) LoginWithGoogle(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if req.AccessToken == "" {
		return respondWithError(errors.New("missing access_token"), "access_token is required", values.BadRequestBody, &tc)
	}

	userInfo, err := api.fetchGoogleUserInfo(r.Context(), req.AccessToken)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}

	user := model.User{
		ID:              "google-" + userInfo.Id,
		Username:        userInfo.Email,
		Email:           &userInfo.Email,
		FirstName:       &userInfo.GivenName,
		LastName:        &userInfo.FamilyName,
		ProfileImageURL: &userInfo.Picture,
		AuthProvider:    "google",
	}
	user, err = api.Store.UpsertUser(r.Context(), user)
	if err != nil {
		return respondWithError(err, "failed to upsert user", values.Error, &tc)
	}

	tokenString, _, err := api.createToken(user.ID)
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}
	refreshString, _, err := api.createRefreshToken(user.ID)
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Login successful",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.LoginResponse{
			User:         &user,
			Token:        tokenString,
			RefreshToken: refreshString,
		},
	}
}

// RefreshToken trades a refresh token for a new token pair.
func (api *API) RefreshToken(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RefreshRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	resp, status, message, err := api.RefreshTokenHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       resp,
	}
}

func (api *API) fetchGoogleUserInfo(ctx context.Context, accessToken string) (*goauth.Userinfo, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := goauth.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}
	return svc.Userinfo.Get().Context(ctx).Do()
}

// CurrentUser returns the authenticated user's record.
func (api *API) CurrentUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	user, err := api.Store.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return respondWithError(err, "user not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get user", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}
