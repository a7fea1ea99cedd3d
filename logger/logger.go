package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

// Nop discards everything.
var Nop Logger = &logger{base: zerolog.Nop()}

type logger struct {
	base zerolog.Logger
}

func New(opts Options) Logger {
	buffer := opts.Buffer
	if buffer == nil {
		buffer = os.Stderr
	}

	kind := opts.Type
	if kind == TypeAuto {
		kind = TypeJSON
		if isTerminal(buffer) {
			kind = TypeText
		}
	}

	var output io.Writer = buffer
	if kind == TypeText {
		console := zerolog.NewConsoleWriter()
		console.Out = buffer
		console.TimeFormat = time.RFC3339
		console.NoColor = !isTerminal(buffer)
		output = console
	}

	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	return &logger{
		base: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// args are alternating keys and values, as with log/slog.
func (l *logger) log(event *zerolog.Event, msg string, args []any) {
	if len(args) > 0 {
		event = event.Fields(args)
	}
	event.Msg(msg)
}

func (l *logger) Debug(msg string, args ...any) { l.log(l.base.Debug(), msg, args) }
func (l *logger) Info(msg string, args ...any)  { l.log(l.base.Info(), msg, args) }
func (l *logger) Warn(msg string, args ...any)  { l.log(l.base.Warn(), msg, args) }
func (l *logger) Error(msg string, args ...any) { l.log(l.base.Error(), msg, args) }

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop
	}
	return l
}
