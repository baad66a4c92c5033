package validation

import (
	"log/slog"

	"github.com/dmitrymomot/livecheck/pkg/logger"
)

const defaultEventBuffer = 16

// Option configures a Context.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	reader       any
	autoValidate bool
	eventBuffer  int
}

func defaultOptions() *options {
	return &options{
		logger:       logger.Discard(),
		autoValidate: true,
		eventBuffer:  defaultEventBuffer,
	}
}

// WithLogger sets the logger used for debug tracing. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithReader installs the accessor used by AddCheck and Context.Value.
// T must match the entity type of the context it is passed to, otherwise New panics.
// Entities implementing observable.Getter get a reader by default.
func WithReader[T any](read func(entity T, field string) (any, bool)) Option {
	return func(o *options) {
		if read != nil {
			o.reader = read
		}
	}
}

// WithAutoValidation controls whether the context subscribes to entity changes.
// When disabled, results only change through Validate and FieldChanged.
func WithAutoValidation(enabled bool) Option {
	return func(o *options) {
		o.autoValidate = enabled
	}
}

// WithEventBuffer sets the per-subscriber buffer of the Changes feed.
// Values below one are ignored.
func WithEventBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.eventBuffer = n
		}
	}
}
