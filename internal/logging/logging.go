// Package logging builds the zerolog loggers used as the default diagnostic
// stream for deprecation messages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"golang.org/x/term"
)

// Config controls logger construction.
type Config struct {
	Format    string // "json", "console", or "auto"
	Level     string // "debug", "info", "warn", "error", "disabled"
	Component string // optional component name
}

var (
	stackOnce sync.Once

	defaultTimeFmt = time.RFC3339
)

// Test seam.
var isTerminalFn = term.IsTerminal

// New returns a logger writing to out. A nil out means os.Stderr.
//
// New installs pkgerrors.MarshalStack as the zerolog stack marshaler the first
// time it is called, so events built with Stack() carry the frames captured by
// github.com/pkg/errors.
func New(cfg Config, out io.Writer) zerolog.Logger {
	stackOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	})

	if out == nil {
		out = os.Stderr
	}

	ctx := zerolog.New(selectWriter(cfg.Format, out)).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp()

	if component := strings.TrimSpace(cfg.Component); component != "" {
		ctx = ctx.Str("component", component)
	}
	return ctx.Logger()
}

func parseLevel(level string) zerolog.Level {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "", "warn", "warning":
		return zerolog.WarnLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		fmt.Fprintf(os.Stderr, "logging: invalid level %q; using %q\n", normalized, "warn")
		return zerolog.WarnLevel
	}
}

func selectWriter(format string, out io.Writer) io.Writer {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "console":
		return newConsoleWriter(out)
	case "json":
		return out
	case "auto", "":
		if isTerminal(out) {
			return newConsoleWriter(out)
		}
		return out
	default:
		fmt.Fprintf(os.Stderr, "logging: invalid format %q; using %q\n", format, "json")
		return out
	}
}

func newConsoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: defaultTimeFmt,
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok || file == nil {
		return false
	}
	return isTerminalFn(int(file.Fd()))
}
