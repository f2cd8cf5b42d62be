package commands

import (
	"errors"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-collection/internal/cli/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// ErrConditionFalse signals a check command whose answer was "no". It makes
// the process exit non-zero without printing an error.
var ErrConditionFalse = errors.New("condition is false")

// state is shared by every subcommand of one root command.
type state struct {
	file string
	cfg  *config.Config
	log  *zap.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	st := &state{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "collect",
		Short: "Query and reshape JSON or YAML documents",
		Long: color.CyanString(`collect - ordered collections from the shell

Reads a JSON or YAML document from --file or standard input, applies one
collection operation, and writes the result as JSON or YAML.

Paths use dot notation: "users.0.name".`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".", cmd.Flags())
			if err != nil {
				return err
			}
			st.cfg = cfg
			if cfg.Verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					logger = zap.NewNop()
				}
				st.log = logger
			}
			st.log.Debug("configuration loaded",
				zap.String("input_format", cfg.InputFormat),
				zap.String("output_format", cfg.OutputFormat),
				zap.Bool("pretty", cfg.Pretty))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = st.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&st.file, "file", "f", "", "read the document from this file instead of stdin")
	flags.StringP("input", "i", config.FormatAuto, "input format: auto, json or yaml")
	flags.StringP("output", "o", config.FormatJSON, "output format: json or yaml")
	flags.Bool("pretty", false, "indent JSON output")
	flags.BoolP("verbose", "v", false, "log debug information to stderr")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newGetCommand(st))
	rootCmd.AddCommand(newSetCommand(st))
	rootCmd.AddCommand(newHasCommand(st))
	rootCmd.AddCommand(newForgetCommand(st))
	rootCmd.AddCommand(newKeysCommand(st))
	rootCmd.AddCommand(newValuesCommand(st))
	rootCmd.AddCommand(newCountCommand(st))
	rootCmd.AddCommand(newPluckCommand(st))
	rootCmd.AddCommand(newGroupByCommand(st))
	rootCmd.AddCommand(newKeyByCommand(st))
	rootCmd.AddCommand(newSortByCommand(st))
	rootCmd.AddCommand(newUniqueCommand(st))
	rootCmd.AddCommand(newSumCommand(st))
	rootCmd.AddCommand(newConvertCommand(st))

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the collect version, Git commit, build date, and Go version",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Fprint(out, "collect version: ")
			valueColor.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			valueColor.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			valueColor.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			valueColor.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrConditionFalse) {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
