package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/domgen/internal/infra/logger"
)

func resolveCmd(g *globalFlags) *cobra.Command {
	var kind string
	var format string
	var fields []string

	c := &cobra.Command{
		Use:   "resolve NAME",
		Short: "Show the namespace, class name and path derived for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			res, err := ws.names.Resolve(args[0], kind)
			if err != nil {
				return err
			}
			logger.L().Debug("resolve.done", "raw", res.Raw, "kind", res.Kind, "fqn", res.FullNamespace)

			out := cmd.OutOrStdout()
			if len(fields) > 0 {
				return printFields(out, res, fields)
			}
			return printResolution(out, res, format)
		},
	}

	c.Flags().StringVarP(&kind, "kind", "k", "Model", "Artifact kind (Model, Controller, Service, ...)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|yaml")
	c.Flags().StringArrayVar(&fields, "field", nil, "Print only the value at this JSONPath (repeatable), e.g. $.full_namespace")
	return c
}
