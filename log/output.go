package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log sinks accepted by ParseOutput.
const (
	SinkStderr = "stderr"
	SinkStdout = "stdout"
	SinkNone   = "none"
	SinkFile   = "file"
)

// Output is a parsed --log-output value.
type Output struct {
	Sink string
	// Path and Levels are only set for SinkFile.
	Path   string
	Levels []logrus.Level
}

// ParseOutput parses one of "stderr", "stdout", "none" or
// "file=path[,level=lvl]". A file output without a level gets every level.
func ParseOutput(line string) (Output, error) {
	switch line {
	case SinkStderr, SinkStdout, SinkNone:
		return Output{Sink: line}, nil
	}

	sink, args, _ := strings.Cut(line, "=")
	if sink != SinkFile {
		return Output{}, fmt.Errorf("unsupported log output '%s'", line)
	}

	path, opts, hasOpts := strings.Cut(args, ",")
	if path == "" {
		return Output{}, errors.New("log file path must not be empty")
	}

	out := Output{Sink: SinkFile, Path: path, Levels: logrus.AllLevels}
	if !hasOpts {
		return out, nil
	}
	for _, opt := range strings.Split(opts, ",") {
		key, value, _ := strings.Cut(opt, "=")
		if key != "level" {
			return Output{}, fmt.Errorf("unknown log file option %q", opt)
		}
		levels, err := levelsUpTo(value)
		if err != nil {
			return Output{}, err
		}
		out.Levels = levels
	}
	return out, nil
}

// levelsUpTo returns every level at least as severe as the named one.
func levelsUpTo(name string) ([]logrus.Level, error) {
	limit, err := logrus.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %s", name)
	}
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, lvl := range logrus.AllLevels {
		if lvl <= limit {
			levels = append(levels, lvl)
		}
	}
	return levels, nil
}
