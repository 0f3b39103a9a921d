package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger wraps zerolog for verbose diagnostics.
//
// Status lines for the user go to stdout via the progress callback; this
// logger carries the noisier -verbose detail (resolved arguments, request
// URLs, response snippets) on stderr.
type logger struct {
	z       zerolog.Logger
	verbose bool
}

// newLogger creates a console logger. Colors are disabled when NO_COLOR is
// set or stderr is not a terminal.
func newLogger(verbose bool) *logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	zl := zerolog.New(out).With().Timestamp().Logger()
	return &logger{z: zl, verbose: verbose}
}

func (l *logger) debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.z.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *logger) warnf(format string, args ...any) { l.z.Warn().Msg(fmt.Sprintf(format, args...)) }
func (l *logger) errf(format string, args ...any)  { l.z.Error().Msg(fmt.Sprintf(format, args...)) }
