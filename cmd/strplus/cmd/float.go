package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/strplus/core/log"
	"github.com/msto63/strplus/utils/stringx"
)

func newFloatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "float [value]",
		Short: "Normalize a number to use '.' as decimal separator",
		Long: `Prints the value in its default representation with every comma
replaced by a period. Values that parse as a number are reformatted.

Examples:
  strplus float 1,5
  strplus float 2.50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			var value any = text
			if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
				value = f
			}

			a.logger.Debug("float", mdwlog.Field("value", value))
			fmt.Fprintln(cmd.OutOrStdout(), stringx.FloatToString(value))
			return nil
		},
	}
}
