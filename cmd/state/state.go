// Package state contains the types and functionality used for keeping track
// of cmd-related values that are used globally throughout locatorgen.
package state

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/liuxd6825/locatorgen/lib/fsext"
	"github.com/liuxd6825/locatorgen/ui/console"
)

const defaultBinaryName = "locatorgen"

// GlobalState contains the GlobalOptions, accessors for the OS resources and
// the loggers. Commands never touch os.* directly, so tests can replace every
// field with a fake.
type GlobalState struct {
	// Ctx is the parent of every context the commands derive, including the
	// one that stops the file log listener.
	Ctx context.Context

	FS         fsext.Fs
	Getwd      func() (string, error)
	BinaryName string
	CmdArgs    []string
	Env        map[string]string

	// DefaultFlags are used for the help output; Flags are the values
	// consolidated from the defaults and the environment, later overwritten
	// by the CLI flags.
	DefaultFlags, Flags GlobalOptions

	// Stdout and Stderr share one mutex.
	Stdout, Stderr *console.Writer
	Stdin          io.Reader

	OSExit func(int)

	Logger         *logrus.Logger
	FallbackLogger logrus.FieldLogger
}

// NewGlobalState returns a new GlobalState with the given ctx, backed by the
// real OS resources.
func NewGlobalState(ctx context.Context) *GlobalState {
	env := BuildEnvMap(os.Environ())
	_, noColorsSet := env["NO_COLOR"]
	noColors := noColorsSet || env["LOCATORGEN_NO_COLOR"] != ""

	outMutex := &sync.Mutex{}
	stdout := console.NewWriter(os.Stdout, outMutex, env["TERM"], noColors)
	stderr := console.NewWriter(os.Stderr, outMutex, env["TERM"], noColors)

	logger := &logrus.Logger{
		Out: stderr,
		Formatter: &logrus.TextFormatter{
			ForceColors:   stderr.IsTTY,
			DisableColors: !stderr.IsTTY || noColors,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	confDir, err := os.UserConfigDir()
	if err != nil {
		logger.WithError(err).Warn("could not get config directory")
		confDir = ".config"
	}

	binary, err := os.Executable()
	if err != nil {
		binary = defaultBinaryName
	}

	defaultFlags := GetDefaultGlobalOptions(confDir)

	return &GlobalState{
		Ctx:          ctx,
		FS:           fsext.NewOsFs(),
		Getwd:        os.Getwd,
		BinaryName:   filepath.Base(binary),
		CmdArgs:      os.Args,
		Env:          env,
		DefaultFlags: defaultFlags,
		Flags:        consolidateGlobalFlags(defaultFlags, env),
		Stdout:       stdout,
		Stderr:       stderr,
		Stdin:        os.Stdin,
		OSExit:       os.Exit,
		Logger:       logger,
		FallbackLogger: &logrus.Logger{ // we may modify the other one
			Out:       stderr,
			Formatter: new(logrus.TextFormatter), // no fancy formatting here
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
}

// BuildEnvMap returns a map from raw environment of the form "key=value".
func BuildEnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
