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

func (api *API) ChartRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/{timeFrame}", Handler(api.GetChart))
	return mux
}

func (api *API) GetChart(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	timeFrame := chi.URLParam(r, "timeFrame")
	if !model.ValidChartTimeFrame(timeFrame) {
		return respondWithError(errors.Errorf("unknown time frame %s", timeFrame),
			"time frame must be 24H, 7D or 30D", values.BadRequestBody, &tc)
	}

	chart, err := api.Store.GetChartData(r.Context(), timeFrame)
	if err != nil {
		return respondWithError(err, "failed to get chart data", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Chart data retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       chart,
	}
}
