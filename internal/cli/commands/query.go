package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGetCommand(st *state) *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dotted path",
		Example: `  echo '{"user":{"name":"ada"}}' | collect get user.name
  collect get -f config.yaml servers.0 --default '{}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			var fallback []any
			if cmd.Flags().Changed("default") {
				fallback = append(fallback, parseValue(def))
			}
			return st.write(cmd, c.Get(args[0], fallback...))
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "value to print when the path is missing")
	return cmd
}

func newSetCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Set the value at a dotted path, creating intermediate levels",
		Long: `Set the value at a dotted path, creating intermediate levels.

The value is parsed as JSON when possible and used as a string otherwise.`,
		Example: `  echo '{}' | collect set db.port 5432`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			st.log.Debug("setting path", zap.String("path", args[0]))
			return st.write(cmd, c.Put(args[0], parseValue(args[1])))
		},
	}
}

func newHasCommand(st *state) *cobra.Command {
	var anyPath bool
	cmd := &cobra.Command{
		Use:   "has <path>...",
		Short: "Check whether paths exist",
		Long: `Check whether every path exists, or any of them with --any.

Prints "true" or "false" and exits with status 1 when the answer is false.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			found := c.HasAll(args...)
			if anyPath {
				found = c.HasAny(args...)
			}
			out := cmd.OutOrStdout()
			if !found {
				color.New(color.FgRed).Fprintln(out, "false")
				return ErrConditionFalse
			}
			color.New(color.FgGreen).Fprintln(out, "true")
			return nil
		},
	}
	cmd.Flags().BoolVar(&anyPath, "any", false, "succeed when at least one path exists")
	return cmd
}

func newForgetCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "forget <path>...",
		Aliases: []string{"rm"},
		Short:   "Remove values at dotted paths",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			return st.write(cmd, c.Forget(args...))
		},
	}
}

func newKeysCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [path]",
		Short: "List the keys of the document or of a nested level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				c = c.GetArray(args[0])
			}
			return st.write(cmd, c.Keys())
		},
	}
}

func newValuesCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "values [path]",
		Short: "List the values of the document or of a nested level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				c = c.GetArray(args[0])
			}
			return st.write(cmd, c.Values())
		},
	}
}

func newCountCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "count [path]",
		Short: "Count the entries of the document or of a nested level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				c = c.GetArray(args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Count())
			return err
		},
	}
}
