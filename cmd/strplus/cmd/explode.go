package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/strplus/core/errors"
	mdwlog "github.com/msto63/strplus/core/log"
	"github.com/msto63/strplus/utils/stringx"
)

func newExplodeCmd(a *app) *cobra.Command {
	var (
		delimiter string
		trim      string
		skipEmpty bool
		asJSON    bool
	)

	explodeCmd := &cobra.Command{
		Use:   "explode [text]",
		Short: "Split text on a delimiter",
		Long: `Splits text on every occurrence of a literal delimiter and trims
each token.

Trim modes:
  space       - strip whitespace (default)
  none        - keep tokens as they are
  chars:<set> - strip the characters of <set>, "a..z" is a range

Examples:
  strplus explode "a, b ,c"
  strplus explode -d ";" --skip-empty "a;;b"
  strplus explode --trim "chars:*" --json "**a**,*b"
  echo "x|y" | strplus explode -d "|"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("delimiter") {
				delimiter = a.cfg.GetString(keyDelimiter)
			}
			if !cmd.Flags().Changed("trim") {
				trim = a.cfg.GetString(keyTrim)
			}
			if !cmd.Flags().Changed("skip-empty") {
				skipEmpty = a.cfg.GetBool(keySkipEmpty)
			}

			strategy, err := stringx.ParseTrimStrategy(trim)
			if err != nil {
				return err
			}

			tokens, err := stringx.Explode(text,
				stringx.WithDelimiter(delimiter),
				stringx.WithTrim(strategy),
				stringx.WithSkipEmpty(skipEmpty))
			if err != nil {
				return err
			}

			a.logger.Debug("explode", mdwlog.String("delimiter", delimiter).
				Merge(mdwlog.String("trim", strategy.String())).
				Merge(mdwlog.Bool("skip_empty", skipEmpty)).
				Merge(mdwlog.Int("tokens", len(tokens))))

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(tokens)
				if err != nil {
					return mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "explode", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, token := range tokens {
				fmt.Fprintln(out, token)
			}
			return nil
		},
	}

	explodeCmd.Flags().StringVarP(&delimiter, "delimiter", "d", stringx.DefaultDelimiter, "literal delimiter")
	explodeCmd.Flags().StringVar(&trim, "trim", "space", "trim mode: space, none or chars:<set>")
	explodeCmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "drop tokens that are empty after trimming")
	explodeCmd.Flags().BoolVar(&asJSON, "json", false, "print the tokens as a JSON array")

	return explodeCmd
}
