package logging

import (
	"log/slog"
	"os"
)

// Logger is the logging surface the ledger components write to. Args are
// alternating key/value pairs, slog style.
type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// StdoutLogger is the default logger of the bank service.
var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
