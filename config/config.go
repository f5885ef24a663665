// path: config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
// A .env file is honoured for local runs; deployed environments set these
// variables directly.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	// Email (Resend over SMTP by default: sender address is the SMTP
	// username, the API key is the password)
	SenderEmail    string `env:"SENDER_EMAIL"`
	SenderPassword string `env:"SENDER_PASSWORD"`
	ReceiverEmail  string `env:"RECEIVER_EMAIL"`
	SMTPServer     string `env:"SMTP_SERVER" envDefault:"smtp.resend.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`

	// Cloudinary image hosting
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	UploadFolder        string `env:"UPLOAD_FOLDER" envDefault:"pest_reports"`

	// Storage backend selection, see store.Resolve
	StoreMode       string `env:"STORE_MODE" envDefault:"auto"`
	SubmissionsFile string `env:"SUBMISSIONS_FILE" envDefault:"data/submissions.json"`
	MongoURI        string `env:"MONGO_URI"`
	MongoDB         string `env:"MONGO_DB" envDefault:"pestreport"`

	// Trailing window for the periodic report and store retention
	RetentionDays int `env:"RETENTION_DAYS" envDefault:"7"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() // best effort; real env always wins

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
