package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/strplus/core/errors"
	mdwlog "github.com/msto63/strplus/core/log"
	"github.com/msto63/strplus/utils/stringx"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		length int
		secure bool
	)

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random digit string",
		Long: `Prints a string of random digits.

Without --secure the digits come from a fast pseudo-random source and must
not be used for secrets.

Examples:
  strplus random
  strplus random -n 8 --secure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.GetInt(keyRandomLength)
			}
			if length < 0 {
				return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, "random", "length", length, "non-negative integer")
			}

			var code string
			if secure {
				var err error
				code, err = stringx.SecureRandomDigitString(length)
				if err != nil {
					return mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "random", err)
				}
			} else {
				code = stringx.RandomDigitString(length)
			}

			a.logger.Debug("random", mdwlog.Int("length", length), mdwlog.Bool("secure", secure))

			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	randomCmd.Flags().IntVarP(&length, "length", "n", stringx.DefaultRandomLength, "number of digits")
	randomCmd.Flags().BoolVar(&secure, "secure", false, "use crypto/rand")

	return randomCmd
}
