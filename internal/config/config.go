package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Addr        string `env:"ADDR" envDefault:":3001"`
	Env         string `env:"ENV" envDefault:"development"`
	ExternalURL string `env:"EXTERNAL_URL" envDefault:"localhost:3001"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	SeedData    bool   `env:"SEED_DATA" envDefault:"true"`

	DB          DBConfig
	Log         LogConfig
	Mail        MailConfig
	RateLimiter RateLimiterConfig
	ReceiptSalt string `env:"RECEIPT_SALT" envDefault:"teamup"`
}

type DBConfig struct {
	Addr        string `env:"DB_ADDR"`
	MaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	MaxIdleTime string `env:"DB_MAX_IDLE_TIME" envDefault:"15m"`
}

// LogConfig enables a rotated JSON log file next to the console output.
type LogConfig struct {
	FilePath   string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

type MailConfig struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	FromEmail    string `env:"SMTP_FROM" envDefault:"noreply@teamup.local"`
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int           `env:"RATELIMITER_REQUESTS_COUNT" envDefault:"200"`
	TimeFrame            time.Duration `env:"RATELIMITER_TIME_FRAME" envDefault:"5s"`
	Enabled              bool          `env:"RATE_LIMITER_ENABLED" envDefault:"false"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Env]: no .env file loaded: %v", err)
	}
	return Parse(env.Options{})
}

// Parse builds a Config from the environment described by opts.
func Parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DB.Addr == "" {
			return errors.New("DB_ADDR is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.RateLimiter.Enabled && c.RateLimiter.RequestsPerTimeFrame < 1 {
		return errors.New("RATELIMITER_REQUESTS_COUNT must be positive")
	}
	return nil
}
