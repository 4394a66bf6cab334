package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int    `env:"PORT" envDefault:"8080"`
	Dsn                 string `env:"DSN"`
	UploadDir           string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes      int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	AnonymousMode       bool   `env:"ANONYMOUS_MODE" envDefault:"true"`
	AnonymousUserID     string `env:"ANONYMOUS_USER_ID" envDefault:"anonymous-user"`
	JwtSecret           string `env:"JWT_SECRET"`
	JwtExpires          string `env:"JWT_EXPIRES" envDefault:"24h"`
	RefreshSecret       string `env:"REFRESH_SECRET"`
	RefreshExpiry       string `env:"REFRESH_EXPIRY" envDefault:"168h"`
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	GoogleClientID      string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret  string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL   string `env:"GOOGLE_REDIRECT_URL"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Println("[Env]: unable to load .env file", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Println("[Env]: failed to parse environment variables:", parseErr)
	}

	return &cfg
}
