// Package logging holds the few helpers shared by every context's
// application layer.
package logging

import "log/slog"

// OrDefault returns logger, or the process default when it is nil.
func OrDefault(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
