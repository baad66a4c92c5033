// Package config loads livecheck settings from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are merged into the process environment, then a tagged
// struct is parsed from it. Each configuration type is parsed once per process
// and cached; Reset clears the cache for tests.
//
// # Usage
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//		return err
//	}
//	log := logger.New(cfg.LoggerOptions()...)
//	v := validation.New(entity, cfg.Options(log)...)
//
// # Variables
//
//   - LIVECHECK_LOG_LEVEL: debug, info, warn or error (default info)
//   - LIVECHECK_LOG_FORMAT: text or json (default text)
//   - LIVECHECK_EVENT_BUFFER: per-subscriber buffer of change feeds (default 16)
//   - LIVECHECK_AUTO_VALIDATE: follow entity changes automatically (default true)
//
// The generic Load and MustLoad work with any struct using env tags.
//
// # Errors
//
// Parsing failures wrap ErrParsingConfig, unreadable .env files wrap
// ErrLoadingEnvFile, and out-of-range values wrap ErrInvalidConfig.
package config
