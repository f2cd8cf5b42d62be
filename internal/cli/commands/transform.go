package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-collection/arr"
)

// ErrUnknownSortFlag is returned for an unsupported --flag value.
var ErrUnknownSortFlag = errors.New("unknown sort flag")

func newPluckCommand(st *state) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:     "pluck <path>",
		Short:   "Extract one path from every entry",
		Example: `  collect pluck -f users.json name --key id`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			if key != "" {
				return st.write(cmd, c.Pluck(args[0], key))
			}
			return st.write(cmd, c.Pluck(args[0]))
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "path whose value keys the result")
	return cmd
}

func newGroupByCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "group-by <path>",
		Short: "Group entries by the value at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			return st.write(cmd, c.GroupBy(args[0]))
		},
	}
}

func newKeyByCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "key-by <path>",
		Short: "Key entries by the value at a path, the last entry winning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			return st.write(cmd, c.KeyBy(args[0]))
		},
	}
}

func newSortByCommand(st *state) *cobra.Command {
	var (
		desc bool
		mode string
	)
	cmd := &cobra.Command{
		Use:   "sort-by <path>",
		Short: "Sort entries by the value at a path, keeping keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flag, err := parseSortFlag(mode)
			if err != nil {
				return err
			}
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			st.log.Debug("sorting",
				zap.String("path", args[0]),
				zap.Bool("desc", desc),
				zap.String("flag", mode))
			if desc {
				return st.write(cmd, c.SortByDesc(args[0], flag))
			}
			return st.write(cmd, c.SortBy(args[0], flag))
		},
	}
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	cmd.Flags().StringVar(&mode, "flag", "regular", "comparison: regular, numeric, string or natural")
	return cmd
}

func parseSortFlag(mode string) (arr.SortFlag, error) {
	switch strings.ToLower(mode) {
	case "", "regular":
		return arr.SortRegular, nil
	case "numeric":
		return arr.SortNumeric, nil
	case "string":
		return arr.SortString, nil
	case "natural":
		return arr.SortNatural, nil
	case "natural-ci":
		return arr.SortNatural | arr.SortFlagCase, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortFlag, mode)
}

func newUniqueCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "unique [path]",
		Short: "Drop duplicate entries, optionally compared by a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return st.write(cmd, c.Unique(args[0]))
			}
			return st.write(cmd, c.Unique())
		},
	}
}

func newSumCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [path]",
		Short: "Sum the entries, optionally the value at a path of each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return st.write(cmd, c.Sum(args[0]))
			}
			return st.write(cmd, c.Sum())
		},
	}
}

func newConvertCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "convert",
		Short:   "Re-encode the document in the output format",
		Example: `  collect convert -f config.yaml -o json --pretty`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.load(cmd)
			if err != nil {
				return err
			}
			return st.write(cmd, c)
		},
	}
}
