// Package console holds the synchronized terminal writers used by the
// locatorgen command line.
package console

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Writer syncs writes with a mutex and, if the output is a TTY, records that.
type Writer struct {
	Mutex  *sync.Mutex
	Writer io.Writer
	IsTTY  bool
}

// NewWriter wraps out for synchronized writes. Dumb terminals are never
// treated as TTYs, and noColor strips any ANSI escape codes written to it.
func NewWriter(out *os.File, mx *sync.Mutex, termType string, noColor bool) *Writer {
	isTTY := termType != "dumb" && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()))
	var w io.Writer = colorable.NewColorable(out)
	if noColor {
		w = colorable.NewNonColorable(out)
	}
	return &Writer{Mutex: mx, Writer: w, IsTTY: isTTY}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	w.Mutex.Lock()
	n, err = w.Writer.Write(p)
	w.Mutex.Unlock()

	return n, err
}
