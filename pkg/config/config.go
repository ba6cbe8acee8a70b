// Package config loads service settings from the environment (and an optional
// .env file) with ardanlabs/conf.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// HTTP is shared by every service.
type HTTP struct {
	Port           string `conf:"env:PORT"`
	LogLevel       string `conf:"default:info,env:LOG_LEVEL"`
	MetricsEnabled bool   `conf:"default:true,env:METRICS_ENABLED"`
	MetricsToken   string `conf:"env:METRICS_TOKEN,noprint"`
}

// Addr falls back to the service's well-known port when PORT is unset.
func (h HTTP) Addr(defaultPort string) string {
	if h.Port == "" {
		return ":" + defaultPort
	}
	return ":" + h.Port
}

type Catalog struct {
	HTTP        HTTP
	DatabaseURL string `conf:"env:DATABASE_URL,noprint"`
	Migrate     bool   `conf:"default:true,env:DB_MIGRATE"`
}

type Lesson struct {
	HTTP HTTP
}

type Gateway struct {
	HTTP HTTP

	CatalogURL    string `conf:"default:http://catalog:8082,env:CATALOG_URL"`
	BasicsURL     string `conf:"default:http://basics:8081,env:BASICS_URL"`
	ValidationURL string `conf:"default:http://validation:8083,env:VALIDATION_URL"`
	BodiesURL     string `conf:"default:http://bodies:8084,env:BODIES_URL"`

	CORSAllowedOrigins string        `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`
	RateLimit          int           `conf:"default:100,env:RATE_LIMIT"`
	RateWindow         time.Duration `conf:"default:1m,env:RATE_WINDOW"`
	Development        bool          `conf:"default:false,env:DEV_MODE"`
}

// Load fills cfg, a pointer to one of the structs above.
// ok is false when --help or --version was requested and usage was printed.
func Load(cfg any) (ok bool, err error) {
	_ = godotenv.Load()

	help, err := conf.Parse("", cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Fprintln(os.Stdout, help)
			return false, nil
		}
		return false, fmt.Errorf("parse config: %w", err)
	}
	return true, nil
}
