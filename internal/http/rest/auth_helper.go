package rest

import (
	"context"
	"errors"
	"time"

	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/dopameter/dopameter_api/internal/store"
	"github.com/dopameter/dopameter_api/util"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/golang-jwt/jwt"
)

type TokenClaims struct {
	UserID string `json:"sub"`
	Type   string `json:"typ"`
	Exp    int64  `json:"exp"`
}

// Simplified token creation
func (api *API) createToken(id string) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) createRefreshToken(id string) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.RefreshExpiry)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "refresh",
	})

	tokenString, err := token.SignedString([]byte(api.Config.RefreshSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) RegisterUserHelper(ctx context.Context, req model.RegisterRequest) (model.LoginResponse, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "validation failed", err
	}

	_, err := api.Store.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return model.LoginResponse{}, values.Conflict, "username already taken", errors.New("username already taken")
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return model.LoginResponse{}, values.Error, "failed to create user", err
	}

	user := model.User{
		ID:       util.GenerateUUID().String(),
		Username: req.Username,
		Email:    &req.Email,
	}
	user, err = api.Store.CreateUser(ctx, user)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create user", err
	}

	tokenString, _, err := api.createToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create token", err
	}
	refreshString, _, err := api.createRefreshToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create token", err
	}

	return model.LoginResponse{User: &user, Token: tokenString, RefreshToken: refreshString}, values.Created, "account created", nil
}

func (api *API) LoginUserHelper(ctx context.Context, req model.LoginRequest) (model.LoginResponse, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "validation failed", err
	}

	user, err := api.Store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return model.LoginResponse{}, values.NotFound, "user does not exist", err
	}

	tokenString, _, err := api.createToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create token", err
	}
	refreshString, _, err := api.createRefreshToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create token", err
	}

	return model.LoginResponse{User: &user, Token: tokenString, RefreshToken: refreshString}, values.Success, "login successful", nil
}

// RefreshTokenHelper exchanges a valid refresh token for a fresh access and
// refresh token pair.
func (api *API) RefreshTokenHelper(ctx context.Context, req model.RefreshRequest) (model.LoginResponse, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "validation failed", err
	}

	claims, err := api.verifyToken(req.RefreshToken, true)
	if err != nil {
		if err.Error() == "token expired" {
			return model.LoginResponse{}, values.TokenExpired, "refresh token expired", err
		}
		return model.LoginResponse{}, values.NotAuthorised, "invalid refresh token", err
	}

	user, err := api.Store.GetUser(ctx, claims.UserID)
	if err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "user no longer exists", err
	}

	tokenString, _, err := api.createToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create token", err
	}
	refreshString, _, err := api.createRefreshToken(user.ID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "failed to create token", err
	}

	return model.LoginResponse{User: &user, Token: tokenString, RefreshToken: refreshString}, values.Success, "token refreshed", nil
}
