package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liuxd6825/locatorgen/cmd/state"
	"github.com/liuxd6825/locatorgen/codegen/locator"
)

func kindNames() string {
	kinds := locator.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func getCmdKinds(gs *state.GlobalState) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported locator kinds",
		Long:  `List the supported locator kinds and the page method each of them calls.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			nameColor := getColor(gs.Flags.NoColor || !gs.Stdout.IsTTY, color.FgCyan)

			var b strings.Builder
			for _, k := range locator.Kinds() {
				fmt.Fprintf(&b, "  %s %s\n", nameColor.Sprintf("%-12s", k), k.Method())
			}
			printToStdout(gs, b.String())
			return nil
		},
	}
}
