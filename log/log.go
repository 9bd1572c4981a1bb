// Package log writes the application's structured log to a dated file.
// The terminal belongs to the control surface, so nothing is printed to it.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/yhkl-dev/mpvctl/config"
)

var (
	fs     = afero.NewOsFs()
	logger = newDiscardLogger()
	file   afero.File
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetFs swaps the filesystem the log file is created on
func SetFs(f afero.Fs) {
	fs = f
}

// Setup configures the logger from cfg. With writing disabled every call is discarded.
func Setup(cfg config.LogConfig) error {
	if err := Close(); err != nil {
		return err
	}
	l := newDiscardLogger()
	logger = l

	if !cfg.Write {
		return nil
	}
	if cfg.Dir == "" {
		return errors.New("log directory path is empty")
	}

	if err := fs.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	file = f
	l.SetOutput(f)

	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return nil
}

// Close releases the log file. Entries logged afterwards are discarded.
func Close() error {
	logger = newDiscardLogger()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// WithField returns an entry carrying a single structured field
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields returns an entry carrying structured fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
