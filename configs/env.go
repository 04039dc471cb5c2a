package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, loaded from the environment with
// an optional .env overlay.
type Config struct {
	MongoURI     string
	DBName       string
	Port         string
	JWTSecret    string
	ResendAPIKey string
	MailFrom     string
}

// Load reads .env (if present) and the process environment. MONGO_URI and
// DB_NAME are mandatory; everything else has a default or degrades a feature
// (no JWT_SECRET means logins carry no token, no RESEND_API_KEY means mail is
// log-only).
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:     os.Getenv("MONGO_URI"),
		DBName:       os.Getenv("DB_NAME"),
		Port:         os.Getenv("PORT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     os.Getenv("MAIL_FROM"),
	}

	if cfg.MongoURI == "" || cfg.DBName == "" {
		log.Fatal("MONGO_URI or DB_NAME not set in environment")
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = "Xolabs Health <noreply@thexolabs.in>"
	}
	return cfg
}
