package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/liuxd6825/locatorgen/cmd/state"
	"github.com/liuxd6825/locatorgen/codegen/locator"
)

type labelCmd struct {
	gs        *state.GlobalState
	hasParams bool
}

func (c *labelCmd) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.BoolVarP(&c.hasParams, "params", "p", false,
		"the label is a format string filled from the parameters value at runtime")
	return flags
}

func (c *labelCmd) run(_ *cobra.Command, args []string) error {
	p := locator.TemplateParam{LocatorStr: args[0], HasParams: c.hasParams}
	printLocator(c.gs, locator.KindLabel, p, locator.Label(p))
	return nil
}

func getCmdLabel(gs *state.GlobalState) *cobra.Command {
	c := &labelCmd{gs: gs}

	exampleText := getExampleText(gs, `
  # Locate the input labelled "Username"
  $ {{.}} label Username

  # Locate an input whose label is filled in at runtime
  $ {{.}} label --params 'User "{0}"'`[1:])

	labelCmd := &cobra.Command{
		Use:   "label <text>",
		Short: "Render a GetByLabel locator",
		Long: `Render a C# expression that locates an element by its accessible label.

The text is escaped for a C# string literal. With --params it is treated as a
composite format string and wrapped in string.Format(..., parameters).`,
		Example: exampleText,
		Args:    cobra.ExactArgs(1),
		RunE:    c.run,
	}

	labelCmd.Flags().AddFlagSet(c.flagSet())
	return labelCmd
}
