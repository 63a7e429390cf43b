package bootstrap

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// setupProvisionalLogging installs a console logger before the
// configuration is read, so discovery and overlay failures are visible.
func setupProvisionalLogging(quiet bool) {
	level := slog.LevelDebug
	if quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})))
}

// newLogger builds the configured logger. Quiet caps the level at error.
func newLogger(format, level string, quiet bool) *slog.Logger {
	lvl := parseLevel(level)
	if quiet && lvl < slog.LevelError {
		lvl = slog.LevelError
	}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: false,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					a.Key = "ts"
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      lvl,
			AddSource:  true,
			TimeFormat: "15:04:05.000",
		})
	}
	return slog.New(h)
}

// bridgeStdLog routes the stdlib logger through slog.
func bridgeStdLog() {
	log.SetFlags(0)
	log.SetOutput(
		slog.NewLogLogger(
			slog.Default().Handler(),
			slog.LevelInfo,
		).Writer(),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
