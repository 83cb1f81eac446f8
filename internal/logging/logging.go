// Package logging sets up the session log. The interactive shell owns the
// terminal, so logs always go to a file rather than the screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dyluth/shelf/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is a session-scoped logrus entry plus the file behind it.
type Logger struct {
	*logrus.Entry
	file *os.File
	path string
}

// New opens cfg.File in append mode and returns a logger tagged with a fresh
// session id.
//
// If the log file cannot be opened it returns a logger writing to stderr along
// with the error, so callers can warn and carry on.
func New(cfg *config.LogConfig) (*Logger, error) {
	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		DisableColors:   true,
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	l := &Logger{Entry: base.WithField("session", uuid.New().String())}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
		base.SetOutput(os.Stderr)
		return l, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		base.SetOutput(os.Stderr)
		return l, fmt.Errorf("failed to open log file: %w", err)
	}

	base.SetOutput(file)
	l.file = file
	l.path = cfg.File
	return l, nil
}

// Discard returns a logger that drops everything. The shell uses it when the
// log file is unavailable, since stderr belongs to the menu.
func Discard() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{Entry: logrus.NewEntry(base)}
}

// Path returns the log file path, or "" when logging to stderr or nowhere.
func (l *Logger) Path() string {
	return l.path
}

// Close closes the log file. Safe to call more than once.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
