package config

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/livecheck/pkg/logger"
	"github.com/dmitrymomot/livecheck/pkg/validation"
)

// Config holds the process-wide livecheck settings.
type Config struct {
	LogLevel     string `env:"LIVECHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LIVECHECK_LOG_FORMAT" envDefault:"text"`
	EventBuffer  int    `env:"LIVECHECK_EVENT_BUFFER" envDefault:"16"`
	AutoValidate bool   `env:"LIVECHECK_AUTO_VALIDATE" envDefault:"true"`
}

// FromEnv loads Config, optionally reading the given .env files first.
func FromEnv(files ...string) (Config, error) {
	var cfg Config
	if len(files) > 0 {
		if err := LoadEnv(files...); err != nil {
			return cfg, err
		}
	}
	if err := Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LIVECHECK_LOG_LEVEL: %w", ErrInvalidConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: LIVECHECK_LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.EventBuffer < 1 {
		return fmt.Errorf("%w: LIVECHECK_EVENT_BUFFER must be positive, got %d", ErrInvalidConfig, c.EventBuffer)
	}
	return nil
}

// LoggerOptions converts the logging settings. Call Validate first;
// invalid values fall back to the logger defaults.
func (c Config) LoggerOptions() []logger.Option {
	var opts []logger.Option
	if lvl, err := logger.ParseLevel(c.LogLevel); err == nil {
		opts = append(opts, logger.WithLevel(lvl))
	}
	if c.LogFormat == string(logger.FormatJSON) {
		opts = append(opts, logger.WithJSONFormatter())
	} else {
		opts = append(opts, logger.WithTextFormatter())
	}
	return opts
}

// Options converts the engine settings into validation context options.
func (c Config) Options(log *slog.Logger) []validation.Option {
	return []validation.Option{
		validation.WithLogger(log),
		validation.WithEventBuffer(c.EventBuffer),
		validation.WithAutoValidation(c.AutoValidate),
	}
}
