package logging

import (
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// AddHook adds a hook to the internal logrus instance
func AddHook(hook logrus.Hook) {
	logger.Hooks.Add(hook)
}

// SetLevel sets the level of the internal logrus instance
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// WithField produces an entry with one field attached
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields produces an entry with multiple fields attached
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Info logs
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Debug logs
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Error logs
func Error(args ...interface{}) {
	logger.Error(args...)
}
