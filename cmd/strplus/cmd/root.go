package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/strplus/core/config"
	mdwerror "github.com/msto63/strplus/core/error"
	mdwerrors "github.com/msto63/strplus/core/errors"
	mdwlog "github.com/msto63/strplus/core/log"
	"github.com/msto63/strplus/pkg/core/logging"
	"github.com/msto63/strplus/utils/stringx"
)

// EnvPrefix prefixes environment overrides, e.g. STRPLUS_STRINGX_DELIMITER
const EnvPrefix = "STRPLUS"

// Configuration keys
const (
	keyDelimiter    = "stringx.delimiter"
	keyTrim         = "stringx.trim"
	keySkipEmpty    = "stringx.skip_empty"
	keyEncoding     = "stringx.encoding"
	keyRandomLength = "stringx.random_length"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
)

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		keyDelimiter:    stringx.DefaultDelimiter,
		keyTrim:         "space",
		keySkipEmpty:    false,
		keyEncoding:     stringx.DefaultEncoding,
		keyRandomLength: stringx.DefaultRandomLength,
		keyLogLevel:     "warn",
		keyLogFormat:    "text",
	}
}

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strplus",
		Short: "strplus - Unicode string utilities",
		Long: `strplus exposes the stringx library on the command line.

Commands:
  explode  - split text on a delimiter
  ucfirst  - upper-case the first character
  ucwords  - title-case every word
  random   - print a random digit string
  float    - normalize a number to use '.' as decimal separator
  between  - extract the text between two markers

Text arguments may be omitted; the text is then read from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json or logfmt")

	rootCmd.AddCommand(
		newExplodeCmd(a),
		newUcfirstCmd(a),
		newUcwordsCmd(a),
		newRandomCmd(a),
		newFloatCmd(a),
		newBetweenCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI against os.Args
func Execute() error {
	a := &app{}
	rootCmd := newRootCmd(a)

	err := rootCmd.Execute()
	if err != nil {
		a.report(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status: 2 for invalid
// arguments and other validation failures, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if mdwErr, ok := mdwerror.As(err); ok {
		return mdwErr.Code().ExitCode()
	}
	return 1
}

// setup loads the configuration and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOptional(a.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  defaultSettings(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.DefaultLoggerConfig("strplus")
	logCfg.Level = cfg.GetString(keyLogLevel)
	logCfg.Format = cfg.GetString(keyLogFormat)
	logCfg.Output = cmd.ErrOrStderr()
	if a.verbose {
		logCfg.Level = "debug"
	}
	if a.logFormat != "" {
		logCfg.Format = a.logFormat
	}

	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	a.logger = logger.
		WithCorrelationID(uuid.NewString()).
		WithFields(mdwlog.String("command", cmd.Name()))

	a.logger.Debug("configuration loaded", mdwlog.String("config", cfg.FilePath()))
	return nil
}

// report logs err and prints it for the user. Flag errors stop cobra
// before setup runs, so there may be no logger yet.
func (a *app) report(w io.Writer, err error) {
	if a.logger != nil {
		a.logger.LogError(err)
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// readInput returns the text argument, or stdin when no argument is given.
// Multiple arguments are joined with a single space; one trailing line
// break is removed from stdin.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		text := strings.Join(args, " ")
		a.logger.Trace("input read", mdwlog.String("source", "args"), mdwlog.Int("bytes", len(text)))
		return text, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "read_input", err)
	}
	a.logger.Trace("input read", mdwlog.String("source", "stdin"), mdwlog.Int("bytes", len(data)))

	text := string(data)
	if strings.HasSuffix(text, "\n") {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}
	return text, nil
}
