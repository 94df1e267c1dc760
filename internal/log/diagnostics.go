package log

import (
	"io"
	"log/slog"
	"time"

	"layoutsyn/internal/config"
)

// NewDiagnostics returns the structured logger used for progress messages.
// It logs warnings by default, info in verbose mode and debug (with source
// locations) in debug mode; quiet mode discards everything.
func NewDiagnostics(cfg *config.Config, w io.Writer) *slog.Logger {
	if !cfg.ShouldLog() {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	level := slog.LevelWarn
	addSource := false
	switch {
	case cfg.IsDebug():
		level = slog.LevelDebug
		addSource = true
	case cfg.IsVerbose():
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}))
}
