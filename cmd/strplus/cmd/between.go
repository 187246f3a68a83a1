package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/strplus/core/errors"
	mdwlog "github.com/msto63/strplus/core/log"
	"github.com/msto63/strplus/utils/stringx"
)

func newBetweenCmd(a *app) *cobra.Command {
	var start, end string

	betweenCmd := &cobra.Command{
		Use:   "between [text]",
		Short: "Extract the text between two markers",
		Long: `Prints the text between the first start marker and the last end
marker after it. Exits non-zero when the markers are not found.

Examples:
  strplus between --start "[" --end "]" "a[b]c[d]e"   # b]c[d`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			result, ok := stringx.FindBetween(text, start, end)
			if !ok {
				return mdwerrors.NotFound(mdwerrors.ModuleCLI, "between", start+" ... "+end)
			}

			a.logger.Debug("between", mdwlog.Int("length", len(result)))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	betweenCmd.Flags().StringVar(&start, "start", "", "start marker")
	betweenCmd.Flags().StringVar(&end, "end", "", "end marker")
	_ = betweenCmd.MarkFlagRequired("start")
	_ = betweenCmd.MarkFlagRequired("end")

	return betweenCmd
}
