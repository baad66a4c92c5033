// Package logger builds *slog.Logger values for livecheck components using
// functional options, plus attribute helpers that keep key names consistent
// across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("form", ctxKeyForm),
//	)
//
//	ctx := validation.New(form, validation.WithLogger(log))
//
// The validation engine logs at debug level only, so production loggers at
// info level stay quiet unless a context is misconfigured.
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel / WithLevelName set the minimum level.
//   - WithOutput redirects output (defaults to os.Stderr).
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.Context.
//
// # Error Handling
//
// Error produces an attribute only for non-nil errors, so
//
//	log.Debug("rules loaded", logger.Error(err))
//
// needs no nil check.
package logger
