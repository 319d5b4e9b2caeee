package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"teamup/internal/config"
	"teamup/internal/db"
	"teamup/internal/domain/activities"
	"teamup/internal/domain/discovery"
	"teamup/internal/domain/donations"
	"teamup/internal/domain/storage"
	"teamup/internal/domain/venues"
	"teamup/internal/mailer"
	"teamup/internal/ratelimiter"
	"teamup/internal/seed"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates a new zap logger with color. When a log file is
// configured, entries are also written there as JSON and rotated.
func NewLogger(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	if cfg.FilePath != "" {
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotator), level))
	}

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			TeamUp API
//	@description	API for TeamUp, find nearby group-sport activities and join them.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := NewLogger(cfg.Log)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Storage
	var store *storage.Container
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := db.New(cfg.DB.Addr, cfg.DB.MaxConns, cfg.DB.MaxIdleTime)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(ctx, pool)
		cancel()
		if err != nil {
			logger.Fatal(err)
		}

		store = storage.NewContainer(pool)
	default:
		store = storage.NewMemoryContainer()
		logger.Info("using in-memory store")
	}

	registry := venues.NewRegistry(store.Venues, logger)
	service := discovery.NewService(store.Activities, registry)

	// Receipts are mailed over SMTP when a host is configured, otherwise logged
	var client mailer.Client
	if cfg.Mail.SMTPHost != "" {
		client, err = mailer.NewSMTPMailer(
			cfg.Mail.SMTPHost,
			cfg.Mail.SMTPPort,
			cfg.Mail.SMTPUser,
			cfg.Mail.SMTPPassword,
			cfg.Mail.FromEmail,
		)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		client = mailer.NewLogMailer(logger)
	}

	numbers, err := donations.NewReceiptNumberGenerator(cfg.ReceiptSalt)
	if err != nil {
		logger.Fatal(err)
	}

	if cfg.SeedData {
		data, err := seed.Default()
		if err != nil {
			logger.Fatal(err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seed.NewSeeder(store.Activities, service, registry, logger).Load(ctx, data); err != nil {
			logger.Warnw("seeding failed", "error", err.Error())
		}
		cancel()
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.RateLimiter.RequestsPerTimeFrame,
		cfg.RateLimiter.TimeFrame,
	)
	defer rateLimiter.Stop()

	app := &application{
		config:      cfg,
		store:       store,
		logger:      logger,
		discovery:   service,
		roster:      activities.NewRosterManager(store.Activities),
		venues:      registry,
		donations:   donations.NewProcessor(client, numbers),
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:3001/api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return store.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
