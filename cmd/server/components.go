// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/config"
	"github.com/tomtom215/oscarmatch/internal/database"
	"github.com/tomtom215/oscarmatch/internal/events"
	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/models"
	"github.com/tomtom215/oscarmatch/internal/reason"
	"github.com/tomtom215/oscarmatch/internal/reasoncache"
	"github.com/tomtom215/oscarmatch/internal/smartmatch"
	"github.com/tomtom215/oscarmatch/internal/textgen"
)

// components holds everything the server builds before the supervisor
// tree starts. Fields for disabled features stay nil.
type components struct {
	db        *database.DB
	catalog   catalog.Catalog
	reasons   *reasoncache.Cache
	badger    *reasoncache.BadgerStore
	service   *smartmatch.Service
	pubsub    *events.PubSub
	publisher *events.Publisher
	consumer  *events.Consumer
}

// buildComponents opens storage and assembles the Smart Match pipeline.
// On error every component opened so far is closed.
func buildComponents(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (c *components, err error) {
	c = &components{}
	defer func() {
		if err != nil {
			c.Close()
			c = nil
		}
	}()

	if needsDatabase(cfg) {
		if c.db, err = database.New(&cfg.Database); err != nil {
			return c, fmt.Errorf("open database: %w", err)
		}
	}

	if c.catalog, err = initCatalog(ctx, cfg, c.db); err != nil {
		return c, err
	}

	store, err := initReasonStore(ctx, cfg, c.db)
	if err != nil {
		return c, err
	}
	if bs, ok := store.(*reasoncache.BadgerStore); ok {
		c.badger = bs
	}
	c.reasons = reasoncache.New(store)

	gen := reason.NewGenerator(initTextGen(cfg), generatorConfig(&cfg.TextGen))
	resolver := reason.NewResolver(c.reasons, gen)

	if c.service, err = smartmatch.NewService(&cfg.SmartMatch, c.catalog, resolver, logger); err != nil {
		return c, fmt.Errorf("create smart match service: %w", err)
	}

	if cfg.Events.Enabled {
		if err = c.initEvents(cfg, logger); err != nil {
			return c, err
		}
		c.service.SetPublisher(c.publisher)
	}

	return c, nil
}

func needsDatabase(cfg *config.Config) bool {
	return cfg.Catalog.Driver == config.CatalogDuckDB || cfg.ReasonCache.Driver == config.ReasonCacheSQL
}

// initCatalog opens the configured catalog and seeds it when asked to.
func initCatalog(ctx context.Context, cfg *config.Config, db *database.DB) (catalog.Catalog, error) {
	cc := &cfg.Catalog

	switch cc.Driver {
	case config.CatalogDuckDB:
		cat := catalog.NewDuckDB(db.Conn(), catalog.DuckDBOptions{QueryTimeout: cc.QueryTimeout})
		if err := cat.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("create movies table: %w", err)
		}
		if cc.SeedOnStartup {
			if err := seedCatalog(ctx, cc.SeedPath, cat); err != nil {
				return nil, err
			}
		}
		return cat, nil

	case config.CatalogMongo:
		cat, err := catalog.NewMongo(ctx, catalog.MongoOptions{
			URI:            cc.Mongo.URI,
			Database:       cc.Mongo.Database,
			Collection:     cc.Mongo.Collection,
			ConnectTimeout: cc.Mongo.ConnectTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("connect mongo catalog: %w", err)
		}
		if cc.SeedOnStartup {
			if err := seedCatalog(ctx, cc.SeedPath, cat); err != nil {
				_ = cat.Close()
				return nil, err
			}
		}
		return cat, nil

	default:
		movies, err := loadSeed(cc.SeedPath)
		if err != nil {
			return nil, err
		}
		logging.Info().Int("movies", len(movies)).Msg("In-memory catalog loaded")
		return catalog.NewMemory(movies), nil
	}
}

func loadSeed(path string) ([]models.Movie, error) {
	var (
		movies []models.Movie
		err    error
	)
	if path == "" {
		movies, err = catalog.BuiltinSeed()
	} else {
		movies, err = catalog.LoadSeed(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return movies, nil
}

func seedCatalog(ctx context.Context, path string, w catalog.Writer) error {
	movies, err := loadSeed(path)
	if err != nil {
		return err
	}
	if err := w.UpsertMovies(ctx, movies); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logging.Info().Int("movies", len(movies)).Msg("Catalog seeded")
	return nil
}

// initReasonStore opens the configured reason cache store.
func initReasonStore(ctx context.Context, cfg *config.Config, db *database.DB) (reasoncache.Store, error) {
	rc := &cfg.ReasonCache

	switch rc.Driver {
	case config.ReasonCacheBadger:
		s, err := reasoncache.OpenBadgerStore(reasoncache.BadgerOptions{Path: rc.BadgerPath, TTL: rc.TTL})
		if err != nil {
			return nil, fmt.Errorf("open badger reason cache: %w", err)
		}
		return s, nil

	case config.ReasonCacheRedis:
		s, err := reasoncache.OpenRedisStore(ctx, reasoncache.RedisOptions{
			Addr:        rc.Redis.Addr,
			Password:    rc.Redis.Password,
			DB:          rc.Redis.DB,
			Prefix:      rc.Redis.Prefix,
			TTL:         rc.TTL,
			DialTimeout: rc.Redis.DialTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis reason cache: %w", err)
		}
		return s, nil

	case config.ReasonCacheSQL:
		s := reasoncache.NewSQLStore(db.Conn())
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("create reason cache table: %w", err)
		}
		return s, nil

	default:
		return reasoncache.NewMemoryStore(), nil
	}
}

// initTextGen returns the breaker-wrapped HTTP client, or a generator that
// always fails when reasons are disabled so every reason is the fallback.
func initTextGen(cfg *config.Config) textgen.Generator {
	tg := &cfg.TextGen
	if !tg.Enabled {
		logging.Info().Msg("Text generation disabled, using fallback reasons")
		return textgen.Disabled{}
	}

	client := textgen.NewClient(textgen.Options{
		BaseURL:           tg.BaseURL,
		APIKey:            tg.APIKey,
		Model:             tg.Model,
		Timeout:           tg.Timeout,
		RequestsPerSecond: tg.RequestsPerSecond,
		Burst:             tg.Burst,
	})

	opts := textgen.DefaultBreakerOptions()
	if b := tg.Breaker; b.MaxRequests > 0 {
		opts.MaxRequests = b.MaxRequests
		opts.Interval = b.Interval
		opts.Timeout = b.Timeout
		opts.MinRequests = b.MinRequests
		opts.FailureRatio = b.FailureRatio
	}

	logging.Info().Str("model", tg.Model).Str("base_url", tg.BaseURL).Msg("Text generation enabled")
	return textgen.NewBreakerClient(client, opts)
}

func generatorConfig(tg *config.TextGenConfig) reason.GeneratorConfig {
	gc := reason.DefaultGeneratorConfig()
	if tg.ReasonTimeout > 0 {
		gc.Timeout = tg.ReasonTimeout
	}
	if tg.MaxOutputTokens > 0 {
		gc.MaxOutputTokens = tg.MaxOutputTokens
	}
	if tg.Temperature > 0 {
		gc.Temperature = tg.Temperature
	}
	return gc
}

func eventOptions(ec *config.EventsConfig) events.Options {
	opts := events.DefaultOptions()
	if ec.Driver != "" {
		opts.Driver = ec.Driver
	}
	opts.NATSURL = ec.NATSURL
	if ec.QueueGroup != "" {
		opts.QueueGroup = ec.QueueGroup
	}
	if ec.RetryMaxRetries > 0 {
		opts.RetryMaxRetries = ec.RetryMaxRetries
	}
	if ec.CloseTimeout > 0 {
		opts.CloseTimeout = ec.CloseTimeout
	}
	return opts
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (c *components) initEvents(cfg *config.Config, logger zerolog.Logger) error {
	opts := eventOptions(&cfg.Events)

	ps, err := events.NewPubSub(opts, events.NewLoggerAdapter(logger))
	if err != nil {
		return fmt.Errorf("create event transport: %w", err)
	}
	c.pubsub = ps
	c.publisher = events.NewPublisher(ps.Publisher)
	c.consumer = events.NewConsumer(ps.Subscriber, opts, logger)

	logging.Info().Str("driver", opts.Driver).Msg("Recommendation events enabled")
	return nil
}

// Close releases everything in reverse order of creation.
func (c *components) Close() error {
	var errs []error
	if c.publisher != nil {
		errs = append(errs, c.publisher.Close())
	}
	if c.pubsub != nil {
		errs = append(errs, c.pubsub.Close())
	}
	if c.reasons != nil {
		errs = append(errs, c.reasons.Close())
	}
	if c.catalog != nil {
		errs = append(errs, c.catalog.Close())
	}
	if c.db != nil {
		errs = append(errs, c.db.Close())
	}
	return errors.Join(errs...)
}
