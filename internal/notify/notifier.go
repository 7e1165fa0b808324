// Package notify decouples user-facing progress reporting from the
// transfer logic.
package notify

import (
	"fmt"
	"log/slog"
)

// Notifier receives user-facing progress and warning messages. It is
// for messages the user should see; diagnostic logging stays on slog.
type Notifier interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Slog is a Notifier that forwards to a structured logger.
type Slog struct {
	Logger *slog.Logger
}

func (s Slog) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Infof implements Notifier.
func (s Slog) Infof(format string, args ...any) {
	s.logger().Info(fmt.Sprintf(format, args...))
}

// Warnf implements Notifier.
func (s Slog) Warnf(format string, args ...any) {
	s.logger().Warn(fmt.Sprintf(format, args...))
}

// Nop discards all messages.
type Nop struct{}

// Infof implements Notifier.
func (Nop) Infof(string, ...any) {}

// Warnf implements Notifier.
func (Nop) Warnf(string, ...any) {}
