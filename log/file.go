package log

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/liuxd6825/locatorgen/lib/fsext"
)

const fileHookBufferSize = 100

// FileHook queues formatted entries and appends them to a log file from its
// Listen loop.
type FileHook struct {
	levels   []logrus.Level
	lines    chan []byte
	file     io.WriteCloser
	fallback logrus.FieldLogger
}

var _ AsyncHook = (*FileHook)(nil)

// NewFileHook opens out.Path for appending, creating the file if needed.
// Relative paths are resolved against getwd. The directory must exist.
func NewFileHook(
	fs fsext.Fs, getwd func() (string, error), fallback logrus.FieldLogger, out Output,
) (*FileHook, error) {
	path := out.Path
	if !filepath.IsAbs(path) {
		cwd, err := getwd()
		if err != nil {
			return nil, fmt.Errorf("log file %q is relative, but the working directory is unknown: %w", path, err)
		}
		path = filepath.Join(cwd, path)
	}

	dir := filepath.Dir(path)
	if _, err := fs.Stat(dir); err != nil {
		return nil, fmt.Errorf("log file directory %q is not usable: %w", dir, err)
	}

	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("couldn't open log file %q: %w", path, err)
	}

	return &FileHook{
		levels:   out.Levels,
		lines:    make(chan []byte, fileHookBufferSize),
		file:     file,
		fallback: fallback,
	}, nil
}

// Listen writes queued entries until ctx is done, then writes whatever is
// still queued and closes the file.
func (h *FileHook) Listen(ctx context.Context) {
	w := bufio.NewWriter(h.file)
	defer h.close(w)

	for {
		select {
		case line := <-h.lines:
			h.write(w, line)
		case <-ctx.Done():
			for {
				select {
				case line := <-h.lines:
					h.write(w, line)
				default:
					return
				}
			}
		}
	}
}

func (h *FileHook) write(w *bufio.Writer, line []byte) {
	if _, err := w.Write(line); err != nil {
		h.fallback.WithError(err).Error("Couldn't write to the log file")
	}
}

func (h *FileHook) close(w *bufio.Writer) {
	if err := w.Flush(); err != nil {
		h.fallback.WithError(err).Error("Couldn't flush the log file")
	}
	if err := h.file.Close(); err != nil {
		h.fallback.WithError(err).Error("Couldn't close the log file")
	}
}

// Fire queues the formatted entry.
func (h *FileHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return fmt.Errorf("couldn't format log entry: %w", err)
	}
	h.lines <- line
	return nil
}

// Levels implements logrus.Hook.
func (h *FileHook) Levels() []logrus.Level {
	return h.levels
}
