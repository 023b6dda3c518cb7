package bot

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// Log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// NewLogger creates the process logger for the given format and level.
// JSON is meant for log collectors, text for a developer's terminal.
// The writer defaults to os.Stdout.
func NewLogger(format string, level slog.Level, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case LogFormatJSON, "":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
	case LogFormatText:
		// charmbracelet/log levels share slog's numeric values.
		handler := log.NewWithOptions(w, log.Options{
			Level:           log.Level(level),
			ReportTimestamp: true,
		})
		return slog.New(handler), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
