package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Logger writes through the global zerolog logger, tagging every line with the registry component.
type Logger struct{}

// Log is the process wide logger. It is usable before DoConfigureLogger runs.
var Log = &Logger{}

const component = "tokenfactory"

func tagged(event *zerolog.Event) *zerolog.Event {
	return event.Str("component", component)
}

func emit(event *zerolog.Event, msg string, err []error) {
	event = tagged(event)
	if len(err) == 1 {
		event = event.Err(err[0])
	}
	event.Msg(msg)
}

func (l *Logger) ZDebug() *zerolog.Event {
	return tagged(zlog.Debug())
}

func (l *Logger) ZInfo() *zerolog.Event {
	return tagged(zlog.Info())
}

func (l *Logger) ZWarn() *zerolog.Event {
	return tagged(zlog.Warn())
}

func (l *Logger) Debug(msg string, err ...error) {
	emit(zlog.Debug(), msg, err)
}

func (l *Logger) Debugf(msg string, args ...interface{}) {
	emit(zlog.Debug(), fmt.Sprintf(msg, args...), nil)
}

func (l *Logger) Info(msg string, err ...error) {
	emit(zlog.Info(), msg, err)
}

func (l *Logger) Infof(msg string, args ...interface{}) {
	emit(zlog.Info(), fmt.Sprintf(msg, args...), nil)
}

func (l *Logger) Warn(msg string, err ...error) {
	emit(zlog.Warn(), msg, err)
}

func (l *Logger) Warnf(msg string, args ...interface{}) {
	emit(zlog.Warn(), fmt.Sprintf(msg, args...), nil)
}

func (l *Logger) Error(msg string, err ...error) {
	emit(zlog.Error(), msg, err)
}

func (l *Logger) Errorf(msg string, args ...interface{}) {
	emit(zlog.Error(), fmt.Sprintf(msg, args...), nil)
}

func (l *Logger) Fatal(msg string, err ...error) {
	emit(zlog.Fatal(), msg, err)
}

func (l *Logger) Fatalf(msg string, args ...interface{}) {
	emit(zlog.Fatal(), fmt.Sprintf(msg, args...), nil)
}

// DoConfigureLogger points the global logger at stdout and, when logPath is set, at the
// log file in append mode. Unknown levels fall back to info.
func DoConfigureLogger(logPath string, logLevel string, prettyLogging bool) {
	var out io.Writer = os.Stdout
	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic(err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	if prettyLogging {
		out = zerolog.ConsoleWriter{Out: out}
	}
	zlog.Logger = zlog.Output(out)

	zerolog.SetGlobalLevel(parseLevel(logLevel))
}

func parseLevel(logLevel string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil || level == zerolog.NoLevel || level == zerolog.TraceLevel || level == zerolog.Disabled {
		return zerolog.InfoLevel
	}
	return level
}
