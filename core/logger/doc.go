// Package logger provides structured logging utilities built on Go's
// standard slog package.
//
// The New factory creates configured loggers:
//
//	log := logger.New(logger.WithProduction("myapp"))
//	log.Info("session issued",
//		logger.Component("auth"),
//		logger.ID("credential_id", id),
//	)
//
// Attribute helpers are nil-safe: logger.Error(nil) yields an empty Attr
// that slog drops, so call sites don't need conditional logging.
package logger
