package deps

import (
	"github.com/dopameter/dopameter_api/config"
	"github.com/dopameter/dopameter_api/internal/db"
	"github.com/dopameter/dopameter_api/util/storage"
	"github.com/dopameter/dopameter_api/util/websockets"
)

type Dependencies struct {
	DB           *db.DB
	Cloudinary   *storage.Cloudinary
	ActivityFeed *websockets.ActivityFeed
}

// New wires the optional externals. The database handle is attached by the
// caller once it knows whether a DSN is configured; Cloudinary stays nil
// unless credentials are present, in which case uploads are offloaded there.
func New(cfg *config.Config) *Dependencies {
	deps := Dependencies{
		ActivityFeed: websockets.NewActivityFeed(),
	}

	if cfg.CloudinaryCloudName != "" {
		deps.Cloudinary = storage.NewCloudinary(cfg)
	}

	return &deps
}
