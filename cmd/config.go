package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"

	"github.com/liuxd6825/locatorgen/cmd/state"
	"github.com/liuxd6825/locatorgen/codegen/locator"
	"github.com/liuxd6825/locatorgen/errext"
	"github.com/liuxd6825/locatorgen/errext/exitcodes"
	"github.com/liuxd6825/locatorgen/lib/fsext"
)

// Config holds the defaults for rendering locators. Values are consolidated
// from the config file, the environment and the command flags, in that
// order of increasing priority.
type Config struct {
	Kind      null.String `json:"kind" envconfig:"LOCATORGEN_KIND"`
	HasParams null.Bool   `json:"hasParams" envconfig:"LOCATORGEN_HAS_PARAMS"`
}

func newDefaultConfig() Config {
	return Config{
		Kind:      null.NewString(string(locator.KindLabel), false),
		HasParams: null.NewBool(false, false),
	}
}

// Apply saves config non-zero config values from the passed config in the receiver.
func (c Config) Apply(cfg Config) Config {
	if cfg.Kind.Valid && cfg.Kind.String != "" {
		c.Kind = cfg.Kind
	}
	if cfg.HasParams.Valid {
		c.HasParams = cfg.HasParams
	}
	return c
}

func configFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringP("kind", "k", string(locator.KindLabel), "locator kind to render, see the kinds command")
	flags.BoolP("params", "p", false, "the locator text is a format string filled from the parameters value at runtime")
	return flags
}

func getConfig(flags *pflag.FlagSet) Config {
	return Config{
		Kind:      getNullString(flags, "kind"),
		HasParams: getNullBool(flags, "params"),
	}
}

// readDiskConfig reads the JSON config file. A missing file is not an error.
func readDiskConfig(gs *state.GlobalState) (Config, error) {
	var conf Config
	data, err := fsext.ReadFile(gs.FS, gs.Flags.ConfigFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	} else if err != nil {
		return conf, fmt.Errorf("couldn't load the configuration from %q: %w", gs.Flags.ConfigFilePath, err)
	}
	if err := json.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("couldn't parse the configuration from %q: %w", gs.Flags.ConfigFilePath, err)
	}
	return conf, nil
}

func readEnvConfig(envMap map[string]string) (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := envMap[key]
		return v, ok
	})
	return conf, err
}

// getConsolidatedConfig assembles the final Config from the defaults, the
// config file, the environment and the CLI flags, and validates the kind.
func getConsolidatedConfig(gs *state.GlobalState, cliConf Config) (conf Config, err error) {
	fileConf, err := readDiskConfig(gs)
	if err != nil {
		return conf, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}
	envConf, err := readEnvConfig(gs.Env)
	if err != nil {
		return conf, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}

	conf = newDefaultConfig().Apply(fileConf).Apply(envConf).Apply(cliConf)

	kind, err := locator.ParseKind(conf.Kind.String)
	if err != nil {
		return conf, errext.WithExitCodeIfNone(
			errext.WithHint(err, "valid kinds are "+kindNames()),
			exitcodes.InvalidArgument,
		)
	}
	conf.Kind = null.NewString(string(kind), conf.Kind.Valid)

	return conf, nil
}
