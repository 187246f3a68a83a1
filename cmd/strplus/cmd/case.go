package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/strplus/core/log"
	"github.com/msto63/strplus/utils/stringx"
)

func newUcfirstCmd(a *app) *cobra.Command {
	return newCaseCmd(a, "ucfirst", "Upper-case the first character", stringx.Capitalize,
		`Examples:
  strplus ucfirst "öffnen"
  printf '\xe9t\xe9' | strplus ucfirst --encoding ISO-8859-1`)
}

func newUcwordsCmd(a *app) *cobra.Command {
	return newCaseCmd(a, "ucwords", "Title-case every word", stringx.TitleCase,
		`Examples:
  strplus ucwords "hello world"
  strplus ucwords " - hello world"`)
}

// newCaseCmd builds a command around one of the capitalization functions
func newCaseCmd(a *app, name, short string, convert func(string, ...string) (string, error), examples string) *cobra.Command {
	var encoding string

	caseCmd := &cobra.Command{
		Use:   name + " [text]",
		Short: short,
		Long:  short + ".\n\n" + examples,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("encoding") {
				encoding = a.cfg.GetString(keyEncoding)
			}

			result, err := convert(text, encoding)
			if err != nil {
				return err
			}

			a.logger.Debug(name, mdwlog.Fields{
				"encoding": encoding,
				"bytes":    len(text),
			})

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	caseCmd.Flags().StringVar(&encoding, "encoding", stringx.DefaultEncoding, "charset of the input (IANA or WHATWG name)")

	return caseCmd
}
