package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/infra/logger"
	"github.com/aalvaropc/domgen/internal/usecase"
)

type boolFlag struct {
	name, short, usage string
}

type optionFlag struct {
	name, short, usage string
}

type kindCommand struct {
	kind    domain.ArtifactKind
	use     string
	short   string
	flags   []boolFlag
	options []optionFlag
}

var forceFlag = boolFlag{domain.FlagForce, "", "Plan the class even if it already exists"}

var kindCommands = []kindCommand{
	{
		kind:  domain.ArtifactModel,
		use:   "model NAME",
		short: "Plan a model and its companion artifacts",
		flags: []boolFlag{
			{domain.FlagAll, "a", "Add a migration, seeder, factory, resource controller and service"},
			{domain.FlagBase, "b", "Like --all, with a base controller"},
			{domain.FlagController, "c", "Add a controller for the model"},
			{domain.FlagFactory, "f", "Add a factory for the model"},
			forceFlag,
			{domain.FlagMigration, "m", "Declare a migration for the model"},
			{domain.FlagSeed, "s", "Declare a seeder for the model"},
			{domain.FlagService, "", "Add a service for the model"},
			{domain.FlagPivot, "p", "The model is a custom intermediate table model"},
			{domain.FlagResource, "r", "The controller is a resource controller"},
			{domain.FlagAPI, "", "The controller is an API controller"},
		},
	},
	{
		kind:  domain.ArtifactController,
		use:   "controller NAME",
		short: "Plan a controller",
		flags: []boolFlag{
			{domain.FlagAPI, "", "Exclude the create and edit methods"},
			forceFlag,
			{domain.FlagInvokable, "i", "Single method, invokable controller"},
			{domain.FlagResource, "r", "Resource controller"},
			{domain.FlagBase, "b", "Base controller bound to a service"},
			{"with-service", "", "Declare the service derived from the controller name"},
		},
		options: []optionFlag{
			{domain.OptModel, "m", "Resource controller for the given model"},
			{domain.OptParent, "p", "Nested resource controller for the given parent model"},
			{domain.OptService, "", "Bind the controller to NAME/SERVICE"},
		},
	},
	{
		kind:    domain.ArtifactService,
		use:     "service NAME",
		short:   "Plan a service",
		flags:   []boolFlag{forceFlag},
		options: []optionFlag{{domain.OptModel, "m", "Bind the service to the given model"}},
	},
	{
		kind:    domain.ArtifactFactory,
		use:     "factory NAME",
		short:   "Plan a model factory",
		flags:   []boolFlag{forceFlag},
		options: []optionFlag{{domain.OptModel, "m", "The model the factory builds"}},
	},
}

func makeCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "make",
		Short: "Plan generated artifacts (nothing is written to disk)",
	}
	for _, kc := range kindCommands {
		c.AddCommand(makeKindCmd(g, kc))
	}
	return c
}

func makeKindCmd(g *globalFlags, kc kindCommand) *cobra.Command {
	var (
		follow bool
		show   bool
		format string
		fields []string
	)
	flags := make(map[string]*bool, len(kc.flags))
	options := make(map[string]*string, len(kc.options))

	c := &cobra.Command{
		Use:   kc.use,
		Short: kc.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			req := domain.Request{Kind: kc.kind, Name: args[0]}
			for name, v := range flags {
				if *v {
					req = req.WithFlag(requestFlag(name), true)
				}
			}
			for name, v := range options {
				req = req.WithOption(name, *v)
			}

			log := logger.L()
			uc := usecase.NewScaffold(ws.generators(log), log)

			plans, err := uc.Execute(cmd.Context(), domain.Dependency{Request: req, Reason: "requested"}, follow)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(fields) > 0 {
				return printFields(out, plans, fields)
			}
			return printPlans(out, plans, format, show)
		},
	}

	for _, f := range kc.flags {
		flags[f.name] = c.Flags().BoolP(f.name, f.short, false, f.usage)
	}
	for _, o := range kc.options {
		options[o.name] = c.Flags().StringP(o.name, o.short, "", o.usage)
	}

	c.Flags().BoolVar(&follow, "follow", false, "Also plan the internal dependencies the artifact declares")
	c.Flags().BoolVar(&show, "show", false, "Include rendered content in pretty output")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|yaml")
	c.Flags().StringArrayVar(&fields, "field", nil, "Print only the value at this JSONPath (repeatable), e.g. $[0].artifact.path")
	return c
}

// requestFlag maps CLI-only flag names onto request flags.
func requestFlag(name string) string {
	if name == "with-service" {
		return domain.FlagService
	}
	return name
}
