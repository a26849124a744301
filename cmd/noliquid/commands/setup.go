package commands

import (
	"fmt"
	"io"

	"github.com/wonny/noliquid/backend/internal/dashboard"
	"github.com/wonny/noliquid/backend/internal/dataset"
	"github.com/wonny/noliquid/backend/pkg/config"
	"github.com/wonny/noliquid/backend/pkg/logger"
	"github.com/wonny/noliquid/backend/pkg/redis"
)

// loadConfig loads the environment and applies the global flags on top
func loadConfig() (*config.Config, error) {
	cfg := config.Read()

	if env != "" {
		cfg.Env = env
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// newAnalyzer loads the dataset and wires the optional Redis memo cache.
// The returned close function releases the Redis connection.
func newAnalyzer(cfg *config.Config, log *logger.Logger) (*dashboard.Analyzer, func() error, error) {
	ds, source, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(map[string]interface{}{
		"source": source,
		"months": len(ds.Months),
	}).Info("Dataset loaded")

	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	var cache *redis.Cache
	if client.Enabled() {
		cache = redis.NewCache(client, logger.ServiceName)
		log.WithField("ttl", cfg.Dataset.CacheTTL.String()).Info("Report memoization enabled")
	}

	return dashboard.NewAnalyzer(ds, source, cache, cfg.Dataset.CacheTTL, log), client.Close, nil
}

// newLogger builds the command logger. Commands that print results to stdout
// pass stderr so logs never mix with their output.
func newLogger(cfg *config.Config, out io.Writer) *logger.Logger {
	return logger.NewWithWriter(cfg, out)
}
