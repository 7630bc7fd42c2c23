package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/domgen/internal/infra/logger"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "domgen",
		Short:        "domgen: namespaces, paths and stubs for domain-oriented PHP projects",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			g.rootNamespaceSet = c.Flags().Changed("root-namespace")

			// Only projects with a domgen.yaml get a log file.
			logRoot := ""
			if root, found, err := resolveWorkspaceRoot(g.workspace); err == nil && found {
				logRoot = root
			}

			var err error
			cleanup, err = logger.Setup(logger.Config{Root: logRoot, Debug: g.debug})
			if err != nil {
				// Logging is best effort.
				cleanup = nil
			}
			if g.debug && logger.Path() != "" {
				fmt.Fprintf(c.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}
			logger.L().Debug("cli.command", "command", c.CommandPath())
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .domgen/logs/domgen.log")
	pf.StringVarP(&g.workspace, "workspace", "w", "", "Project root (optional; autodetected from domgen.yaml)")
	pf.StringVar(&g.rootNamespace, "root-namespace", "", "Override the root namespace (e.g. \"App.\")")
	pf.StringVar(&g.ext, "ext", "", "Override the source file extension")

	cmd.AddCommand(
		resolveCmd(g),
		makeCmd(g),
		stubsCmd(g),
		versionCmd(),
	)
	return cmd
}
