package terminology

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/CMSgov/pixfeed-app/conf"
	"github.com/CMSgov/pixfeed-app/log"
	"github.com/CMSgov/pixfeed-app/pixfeed/terminology/postgres"
)

type Config struct {
	CrosswalkURI  string `conf:"PIXFEED_CROSSWALK_URI"`
	S3Endpoint    string `conf:"PIXFEED_S3_ENDPOINT"`
	AssumeRoleArn string `conf:"PIXFEED_S3_ASSUME_ROLE_ARN"`
	DatabaseURL   string `conf:"PIXFEED_TERMINOLOGY_DATABASE_URL"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := conf.Checkout(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewFromConfig builds the translation chain: the crosswalk file, then the
// concept_map database, then the built in ISO tables. Sources that are not
// configured are left out.
func NewFromConfig(ctx context.Context, cfg *Config, systems SystemResolver) (Chain, error) {
	var chain Chain

	if cfg.CrosswalkURI != "" {
		handler := HandlerFor(cfg.CrosswalkURI, log.Terminology, cfg.S3Endpoint, cfg.AssumeRoleArn)
		crosswalk, err := LoadCrosswalkFrom(ctx, handler, cfg.CrosswalkURI)
		if err != nil {
			return nil, err
		}
		chain = append(chain, crosswalk)
	}

	if cfg.DatabaseURL != "" {
		dbCfg, err := postgres.LoadConfig()
		if err != nil {
			return nil, err
		}
		db, err := postgres.Connect(ctx, dbCfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to terminology database")
		}
		chain = append(chain, &postgres.Translator{
			Repository: postgres.NewRepository(db),
			Timeout:    time.Duration(dbCfg.LookupTimeoutMS) * time.Millisecond,
			Logger:     log.Terminology,
		})
	}

	chain = append(chain, NewISOTranslator(systems))
	return chain, nil
}

// LoadCrosswalkFrom opens uri through handler and parses it.
func LoadCrosswalkFrom(ctx context.Context, handler FileHandler, uri string) (*Crosswalk, error) {
	rc, err := handler.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			log.Terminology.Warnf("Failed to close crosswalk %s: %s", uri, err)
		}
	}()

	crosswalk, err := LoadCrosswalk(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load crosswalk %s", uri)
	}
	return crosswalk, nil
}
