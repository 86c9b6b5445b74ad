package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/stdlib"

	"github.com/CMSgov/pixfeed-app/conf"
	"github.com/CMSgov/pixfeed-app/log"
)

type Config struct {
	DatabaseURL     string `conf:"PIXFEED_TERMINOLOGY_DATABASE_URL"`
	MaxOpenConns    int    `conf:"PIXFEED_DB_MAX_OPEN_CONNS" conf_default:"10"`
	PingRetries     uint64 `conf:"PIXFEED_DB_PING_RETRIES" conf_default:"5"`
	LookupTimeoutMS int    `conf:"PIXFEED_DB_LOOKUP_TIMEOUT_MS" conf_default:"500"`
}

func LoadConfig() (cfg *Config, err error) {
	cfg = &Config{}
	if err := conf.Checkout(cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("invalid config, DatabaseURL must be set")
	}

	log.Terminology.Info("Successfully loaded configuration for terminology database.")

	return cfg, nil
}

// Connect opens the terminology database and waits for it to answer a ping,
// retrying with exponential backoff.
func Connect(ctx context.Context, cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	ping := func() error {
		return db.PingContext(ctx)
	}
	notify := func(err error, wait time.Duration) {
		log.Terminology.Warnf("Terminology database not ready, retrying in %s: %s", wait, err)
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.PingRetries), ctx)
	if err := backoff.RetryNotify(ping, b, notify); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
