// Package logger is a thin, option-driven factory around log/slog.
//
// New returns a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that pull attributes out of a context.Context on every record.
// Helper constructors in attr.go keep attribute keys consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "cachesim"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "replay finished",
//	    logger.Policy("lru"),
//	    logger.Capacity(128),
//	    logger.HitRatio(0.82),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
