// Package log configures the logrus logger of the locatorgen command line
// from its --log-output and --log-format settings.
package log

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/liuxd6825/locatorgen/lib/fsext"
	"github.com/liuxd6825/locatorgen/ui/console"
)

// Supported values of --log-format. An empty format means text.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatRaw  = "raw"
)

// AsyncHook is a logrus.Hook whose entries are written by a separate
// Listen loop. Listen returns once ctx is done and everything queued
// before that has been written.
type AsyncHook interface {
	logrus.Hook
	Listen(ctx context.Context)
}

// Setup is everything Configure needs besides the logger.
type Setup struct {
	Output  string
	Format  string
	NoColor bool
	Verbose bool

	Stdout, Stderr *console.Writer
	FS             fsext.Fs
	Getwd          func() (string, error)
	// Fallback reports failures of the file hook itself.
	Fallback logrus.FieldLogger
}

// Configure points logger at the output and format described by s. For a
// file output it returns the hook that now receives every entry; the caller
// has to run its Listen loop. Otherwise the returned hook is nil.
func Configure(logger *logrus.Logger, s Setup) (AsyncHook, error) {
	out, err := ParseOutput(s.Output)
	if err != nil {
		return nil, err
	}
	if s.Format != "" && s.Format != FormatText && s.Format != FormatJSON && s.Format != FormatRaw {
		return nil, fmt.Errorf("unsupported log format '%s'", s.Format)
	}

	if s.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var (
		hook AsyncHook
		tty  bool
	)
	switch out.Sink {
	case SinkStderr:
		logger.SetOutput(s.Stderr)
		tty = s.Stderr.IsTTY
	case SinkStdout:
		logger.SetOutput(s.Stdout)
		tty = s.Stdout.IsTTY
	case SinkNone:
		logger.SetOutput(io.Discard)
	case SinkFile:
		fh, err := NewFileHook(s.FS, s.Getwd, s.Fallback, out)
		if err != nil {
			return nil, err
		}
		logger.AddHook(fh)
		logger.SetOutput(io.Discard)
		hook = fh
	}

	switch s.Format {
	case FormatRaw:
		logger.SetFormatter(RawFormatter{})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   tty && !s.NoColor,
			DisableColors: s.NoColor,
		})
	}

	logger.WithFields(logrus.Fields{
		"output": out.Sink,
		"format": s.Format,
	}).Debug("Logger configured")

	return hook, nil
}

// RawFormatter prints only the message of an entry.
type RawFormatter struct{}

// Format implements logrus.Formatter.
func (RawFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return append([]byte(entry.Message), '\n'), nil
}
