package main

import (
	"github.com/calenfir/bazaar/internal/config"
	"github.com/calenfir/bazaar/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info is only useful during development
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig, nil)
}
