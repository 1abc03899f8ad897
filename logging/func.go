package logging

import (
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Func is a function that can be used for logging.
type Func func(Level, string, ...interface{})

// Discard returns a logging function that drops every message.
func Discard() Func {
	return func(Level, string, ...interface{}) {}
}

// Test returns a logging function that forwards messages to the test logger.
func Test(t testing.TB) Func {
	return func(l Level, format string, a ...interface{}) {
		format = fmt.Sprintf("%s: %s", l.String(), format)
		t.Logf(format, a...)
	}
}

// Stdout returns a logging function that prints log messages on standard
// output.
func Stdout() Func {
	return New(Debug, os.Stdout)
}

// New returns a logging function that writes messages at or above the given
// level to w, one line per message. Output is colored when w is a terminal.
//
// A nil writer means standard error.
func New(level Level, w io.Writer) Func {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		output.Out = colorable.NewColorable(f)
		output.NoColor = false
	}
	return Zerolog(level, zerolog.New(output).With().Str("app", "wlscan").Logger())
}

// Zerolog returns a logging function that forwards messages at or above the
// given level to logger.
func Zerolog(level Level, logger zerolog.Logger) Func {
	return func(l Level, format string, a ...interface{}) {
		if level == None || l < level {
			return
		}
		var event *zerolog.Event
		switch l {
		case Debug:
			event = logger.Debug()
		case Info:
			event = logger.Info()
		case Warn:
			event = logger.Warn()
		default:
			event = logger.Error()
		}
		event.Msgf(format, a...)
	}
}
