package logger

import corelogger "github.com/kilianp07/examdist/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Infow(string, map[string]any)  {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component using the process defaults.
// The output format is detected via the APP_ENV variable unless Configure
// was called.
func New(component string) Logger {
	return NewZerologLogger(component, defaultOptions())
}
