package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how loggers are built.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// Format is "json" or "console". Empty falls back to APP_ENV=dev => console.
	Format string
	// Out defaults to stderr so report output on stdout stays clean.
	Out io.Writer
}

var (
	defaultsMu sync.RWMutex
	defaults   Options
)

// Configure sets the options used by New.
func Configure(o Options) {
	defaultsMu.Lock()
	defaults = o
	defaultsMu.Unlock()
}

func defaultOptions() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. All logs include the component field.
func NewZerologLogger(component string, o Options) Logger {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	format := strings.ToLower(o.Format)
	if format == "" && strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		format = "console"
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(o.Level))
	if err != nil || o.Level == "" {
		lvl = zerolog.InfoLevel
	}
	z := zerolog.New(out).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	withFields(l.log.Debug(), fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Infow(msg string, fields map[string]any) {
	withFields(l.log.Info(), fields).Msg(msg)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

// withFields adds fields in key order so output is stable.
func withFields(ev *zerolog.Event, fields map[string]any) *zerolog.Event {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ev = ev.Interface(k, fields[k])
	}
	return ev
}
