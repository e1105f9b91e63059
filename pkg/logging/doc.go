// Package logging provides structured logging utilities shared by all
// fitstack components.
//
// It wraps the standard library slog package with project defaults:
// structured JSON logging to stderr, environment-based log level
// configuration (LOG_LEVEL), module/version context injection, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("fitstack", "v1.0.0")
//
//	    slog.Info("processing region", "region", "signal_region")
//	    slog.Debug("detailed state", "spec", spec)
//	    slog.Error("template build failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("fitstack", "v1.0.0", "debug")
//	logger.Info("enumerating templates", "regions", len(cfg.Regions))
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given; it defaults to INFO. Supported levels (case-insensitive):
// debug, info, warn/warning, error.
package logging
