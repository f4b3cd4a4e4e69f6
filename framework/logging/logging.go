package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/km-arc/go-laravel/framework/config"
)

// New builds the application logger from cfg. Output goes to w (os.Stdout
// when nil) and, when cfg.FilePath is set, also to a rotated log file.
//
// The returned io.Closer releases the log file; it is a no-op when no file
// is configured.
//
//	// Laravel: Log::channel('stack')
//	logger, closer := logging.New(cfg.Log, nil)
//	defer closer.Close()
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, io.Closer) {
	if w == nil {
		w = os.Stdout
	}

	var closer io.Closer = nopCloser{}
	if cfg.FilePath != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    positive(cfg.FileMaxSizeMB, 100),
			MaxBackups: positive(cfg.FileMaxBackups, 3),
			MaxAge:     positive(cfg.FileMaxAgeDays, 30),
		}
		w = io.MultiWriter(w, lj)
		closer = lj
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closer
}

// ParseLevel converts a level name to slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func positive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
