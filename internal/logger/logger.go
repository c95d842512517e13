package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config selects the log level and whether source locations are recorded.
type Config struct {
	Debug bool
}

// New returns a JSON logger writing to w. Only warnings and errors are
// written unless Debug is set.
func New(w io.Writer, cfg Config) *slog.Logger {
	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}
