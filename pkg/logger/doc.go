// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler, applies static
// attributes and wraps the result in a handler that adds the attributes
// attached to the context with WithScope, plus any registered extractors:
//
//	log := logger.New(
//	    logger.WithLevelName("debug"),
//	    logger.WithFormat(logger.FormatJSON),
//	)
//	ctx = logger.WithScope(ctx, logger.Command("check"), logger.Check("iban"))
//	log.DebugContext(ctx, "check finished", logger.Count(3))
//
// Defaults are text output at warn level on stderr, so that command output on
// stdout stays clean.
//
// Error and Errors return an empty Attr for nil errors, which slog drops:
//
//	log.Warn("generation degraded", logger.Error(err))
package logger
