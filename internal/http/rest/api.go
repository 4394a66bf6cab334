package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dopameter/dopameter_api/config"
	deps "github.com/dopameter/dopameter_api/internal/debs"
	"github.com/dopameter/dopameter_api/internal/store"
	"github.com/dopameter/dopameter_api/util/values"
	"github.com/go-chi/chi/v5"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	Store  store.Store
}

// Init prepares local state the handlers depend on, currently just the
// uploads directory.
func (api *API) Init() error {
	return os.MkdirAll(api.Config.UploadDir, 0o755)
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Dopameter API"))
		},
	)

	mux.Mount("/auth", api.AuthRoutes())
	mux.Route("/api", func(r chi.Router) {
		r.Mount("/content", api.ContentRoutes())
		r.Mount("/favorites", api.FavoriteRoutes())
		r.Mount("/leaderboard", api.LeaderboardRoutes())
		r.Mount("/chart", api.ChartRoutes())
	})

	mux.Get("/ws", api.Deps.ActivityFeed.HandleConnections)

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(api.Config.UploadDir)))
	mux.Handle("/uploads/*", fileServer)

	return mux
}

func (a *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	err := a.Server.Shutdown(ctx)
	if err != nil {
		return err
	}
	return nil
}
