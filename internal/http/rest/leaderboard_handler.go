package rest

import (
	"net/http"

	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/dopameter/dopameter_api/util"
	"github.com/dopameter/dopameter_api/util/tracing"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (api *API) LeaderboardRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/{timeFrame}", Handler(api.GetLeaderboard))
	return mux
}

// GetLeaderboard ranks content by average rating over the daily, weekly
// or monthly window.
func (api *API) GetLeaderboard(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	timeFrame := chi.URLParam(r, "timeFrame")
	if !model.ValidLeaderboardTimeFrame(timeFrame) {
		return respondWithError(errors.Errorf("unknown time frame %s", timeFrame),
			"time frame must be daily, weekly or monthly", values.BadRequestBody, &tc)
	}

	ranked, err := api.Store.GetLeaderboard(r.Context(), timeFrame)
	if err != nil {
		return respondWithError(err, "failed to get leaderboard", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Leaderboard retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ranked,
	}
}
