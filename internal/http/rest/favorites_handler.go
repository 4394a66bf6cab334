package rest

import (
	"net/http"

	"github.com/dopameter/dopameter_api/util"
	"github.com/dopameter/dopameter_api/util/tracing"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) FavoriteRoutes() chi.Router {
	mux := chi.NewRouter()
	mux.Use(api.ResolveActor)

	mux.Method(http.MethodGet, "/", Handler(api.ListFavorites))
	return mux
}

func (api *API) ListFavorites(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	favorites, status, message, err := api.ListFavoritesHelper(r.Context(), userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       favorites,
	}
}
