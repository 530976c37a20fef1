package cli

import (
	"github.com/spf13/cobra"

	"folio/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandRender
	CommandInit
	CommandVersion
	CommandHelp
)

// String returns the command name
func (t CommandType) String() string {
	switch t {
	case CommandRun:
		return "run"
	case CommandRender:
		return "render"
	case CommandInit:
		return "init"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	View   string
	NoUI   bool
	Force  bool
	DryRun bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandRun,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRenderCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Personal portfolio in your terminal",
		Long: `Folio renders a personal portfolio as a terminal UI with
home, about, skills, projects and contact sections.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print the section instead of starting the TUI")
	cmd.Flags().StringVar(&result.View, "view", "", "Section to open first (home, about, skills, projects, contact)")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRenderCommand creates the render subcommand
func buildRenderCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [view]",
		Aliases: []string{"r"},
		Short:   "Print one section to stdout",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRender
			if len(args) > 0 {
				result.View = args[0]
			}
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate folio.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing folio.yaml")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
