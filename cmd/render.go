package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liuxd6825/locatorgen/cmd/state"
	"github.com/liuxd6825/locatorgen/codegen/locator"
)

type renderCmd struct {
	gs *state.GlobalState
}

func (c *renderCmd) run(cmd *cobra.Command, args []string) error {
	conf, err := getConsolidatedConfig(c.gs, getConfig(cmd.Flags()))
	if err != nil {
		return err
	}

	kind := locator.Kind(conf.Kind.String)
	p := locator.TemplateParam{LocatorStr: args[0], HasParams: conf.HasParams.Bool}
	expr, err := locator.Render(kind, p)
	if err != nil {
		return err
	}

	printLocator(c.gs, kind, p, expr)
	return nil
}

func getCmdRender(gs *state.GlobalState) *cobra.Command {
	c := &renderCmd{gs: gs}

	exampleText := getExampleText(gs, `
  # Locate an element by its placeholder
  $ {{.}} render --kind placeholder "Search"

  # Locate an element by a test id filled in at runtime
  $ {{.}} render --kind test_id --params "row-{0}"

  # Use the kind from the environment
  $ LOCATORGEN_KIND=alt_text {{.}} render "Company logo"`[1:])

	renderCmd := &cobra.Command{
		Use:   "render <text>",
		Short: "Render a locator of any supported kind",
		Long: `Render a C# expression that builds a locator of the given kind.

The kind and the params switch can also be set in the config file ("kind",
"hasParams") or with the LOCATORGEN_KIND and LOCATORGEN_HAS_PARAMS environment
variables. Flags take precedence over the environment, which takes precedence
over the config file.`,
		Example: exampleText,
		Args:    cobra.ExactArgs(1),
		RunE:    c.run,
	}

	renderCmd.Flags().AddFlagSet(configFlagSet())
	return renderCmd
}
