package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

// Handler returns the slog handler used across blogview.
func Handler(debug bool, out io.Writer) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return tint.NewHandler(out, &tint.Options{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if _, ok := attr.Value.Any().(error); attr.Key == "err" || ok {
				return tint.Attr(9, attr)
			}
			return attr
		},
		TimeFormat: time.RFC3339,
		NoColor:    !logColors(out),
	})
}

// New builds a logger writing to stderr and, when file is set, to a
// size-rotated log file as well. The returned closer flushes the file.
func New(debug bool, file string) (*slog.Logger, io.Closer) {
	if file == "" {
		return slog.New(Handler(debug, os.Stderr)), io.NopCloser(nil)
	}

	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50,
		MaxBackups: 3,
		Compress:   true,
	}
	return slog.New(Handler(debug, io.MultiWriter(os.Stderr, rotated))), rotated
}
