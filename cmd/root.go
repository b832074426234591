package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/liuxd6825/locatorgen/cmd/state"
	"github.com/liuxd6825/locatorgen/errext"
	"github.com/liuxd6825/locatorgen/errext/exitcodes"
	"github.com/liuxd6825/locatorgen/lib/consts"
	"github.com/liuxd6825/locatorgen/log"
)

const waitLoggerCloseTimeout = time.Second * 5

type rootCommand struct {
	globalState *state.GlobalState
	cmd         *cobra.Command

	// loggersCtx bounds the file log listener; it is derived from gs.Ctx.
	loggersCtx    context.Context
	cancelLoggers context.CancelFunc
	loggersWg     sync.WaitGroup
}

func newRootCommand(gs *state.GlobalState) *rootCommand {
	c := &rootCommand{globalState: gs}
	c.loggersCtx, c.cancelLoggers = context.WithCancel(gs.Ctx)
	// the base command when called without any subcommands.
	rootCmd := &cobra.Command{
		Use:               gs.BinaryName,
		Short:             "Generate C# Playwright locator expressions",
		Long:              "Generate C# expressions that build Playwright locators on the page object of a generated .NET client.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
		Version:           consts.Version,
	}

	rootCmd.SetVersionTemplate(
		`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "v%s\n" .Version}}`,
	)

	rootCmd.PersistentFlags().AddFlagSet(rootCmdPersistentFlagSet(gs))
	rootCmd.SetArgs(gs.CmdArgs[1:])
	rootCmd.SetOut(gs.Stdout)
	rootCmd.SetErr(gs.Stderr)
	rootCmd.SetIn(gs.Stdin)

	subCommands := []func(*state.GlobalState) *cobra.Command{
		getCmdLabel, getCmdRender, getCmdKinds, getCmdVersion,
	}

	for _, sc := range subCommands {
		rootCmd.AddCommand(sc(gs))
	}

	c.cmd = rootCmd
	return c
}

func (c *rootCommand) persistentPreRunE(_ *cobra.Command, _ []string) error {
	if err := c.setupLoggers(); err != nil {
		return errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}

	c.globalState.Logger.WithFields(logrus.Fields{
		"version": consts.FullVersion(),
		"args":    c.globalState.CmdArgs[1:],
	}).Debug("Starting locatorgen")

	return nil
}

func (c *rootCommand) execute() {
	exitCode := -1
	defer func() {
		c.stopLoggers()
		c.globalState.OSExit(exitCode)
	}()

	defer func() {
		if r := recover(); r != nil {
			exitCode = int(exitcodes.GoPanic)
			err := fmt.Errorf("unexpected locatorgen panic: %s\n%s", r, debug.Stack())
			c.globalState.Logger.Error(err)
		}
	}()

	err := c.cmd.Execute()
	if err == nil {
		exitCode = 0
		return
	}

	var ecerr errext.HasExitCode
	if errors.As(err, &ecerr) {
		exitCode = int(ecerr.ExitCode())
	}

	errText, fields := errext.Format(err)
	c.globalState.Logger.WithFields(fields).Error(errText)
}

// Execute runs locatorgen with the arguments and streams of the current
// process and exits with the resulting code.
func Execute() {
	gs := state.NewGlobalState(context.Background())

	newRootCommand(gs).execute()
}

// ExecuteWithGlobalState runs locatorgen against gs instead of the process
// resources.
func ExecuteWithGlobalState(gs *state.GlobalState) {
	newRootCommand(gs).execute()
}

func (c *rootCommand) stopLoggers() {
	done := make(chan struct{})
	go func() {
		c.loggersWg.Wait()
		close(done)
	}()
	c.cancelLoggers()
	select {
	case <-done:
	case <-time.After(waitLoggerCloseTimeout):
		c.globalState.FallbackLogger.Errorf("The logger didn't stop in %s", waitLoggerCloseTimeout)
	}
}

func rootCmdPersistentFlagSet(gs *state.GlobalState) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	// gs.Flags may already hold env values, so the help output takes its
	// defaults from gs.DefaultFlags instead.
	flags.StringVar(&gs.Flags.LogOutput, "log-output", gs.Flags.LogOutput,
		"where logs go: 'stderr', 'stdout', 'none' or 'file=path[,level=lvl]'")
	flags.Lookup("log-output").DefValue = gs.DefaultFlags.LogOutput

	flags.StringVar(&gs.Flags.LogFormat, "log-format", gs.Flags.LogFormat,
		"log format: 'text', 'json' or 'raw'")
	flags.Lookup("log-format").DefValue = gs.DefaultFlags.LogFormat

	flags.StringVarP(&gs.Flags.ConfigFilePath, "config", "c", gs.Flags.ConfigFilePath,
		"JSON config file with the render defaults")
	flags.Lookup("config").DefValue = gs.DefaultFlags.ConfigFilePath
	must(cobra.MarkFlagFilename(flags, "config"))

	flags.BoolVar(&gs.Flags.NoColor, "no-color", gs.Flags.NoColor, "disable colored output")
	flags.Lookup("no-color").DefValue = strconv.FormatBool(gs.DefaultFlags.NoColor)

	flags.BoolVarP(&gs.Flags.Verbose, "verbose", "v", gs.DefaultFlags.Verbose, "enable verbose logging")
	return flags
}

func (c *rootCommand) setupLoggers() error {
	gs := c.globalState
	hook, err := log.Configure(gs.Logger, log.Setup{
		Output:   gs.Flags.LogOutput,
		Format:   gs.Flags.LogFormat,
		NoColor:  gs.Flags.NoColor,
		Verbose:  gs.Flags.Verbose,
		Stdout:   gs.Stdout,
		Stderr:   gs.Stderr,
		FS:       gs.FS,
		Getwd:    gs.Getwd,
		Fallback: gs.FallbackLogger,
	})
	if err != nil {
		return err
	}
	if hook != nil {
		c.loggersWg.Add(1)
		go func() {
			defer c.loggersWg.Done()
			hook.Listen(c.loggersCtx)
		}()
	}
	return nil
}
