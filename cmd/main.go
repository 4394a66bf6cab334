package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dopameter/dopameter_api/config"
	"github.com/dopameter/dopameter_api/internal/db"
	deps "github.com/dopameter/dopameter_api/internal/debs"
	api "github.com/dopameter/dopameter_api/internal/http/rest"
	"github.com/dopameter/dopameter_api/internal/store"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	var contentStore store.Store
	if cfg.Dsn != "" {
		database, err := db.New(cfg.Dsn)
		if err != nil {
			log.Panicln("failed to connect to database", "error", err)
		}
		defer database.Close()
		deps.DB = database

		pg := store.NewPostgresStore(database)
		if err := pg.Init(context.Background()); err != nil {
			log.Panicln("failed to prepare database schema", "error", err)
		}
		contentStore = pg
	} else {
		mem := store.NewMemStore()
		if cfg.AnonymousMode {
			mem.SeedDemoData(cfg.AnonymousUserID)
		}
		contentStore = mem
		log.Println("No DSN configured, serving from in-memory store")
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		Store:  contentStore,
	}
	if err := a.Init(); err != nil {
		log.Panicln("failed to initialise server state", "error", err)
	}
	go deps.ActivityFeed.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")
	log.Fatal(a.Shutdown())
}
