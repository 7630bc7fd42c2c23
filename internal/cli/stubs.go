package cli

import (
	"github.com/spf13/cobra"
)

func stubsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "stubs",
		Short: "Inspect the stubs used to render artifacts",
	}

	c.AddCommand(stubsListCmd(g))
	return c
}

func stubsListCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stubs and project overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			refs, err := ws.stubs.ListStubs()
			if err != nil {
				return err
			}
			return printStubs(cmd.OutOrStdout(), refs, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|yaml")
	return cmd
}
