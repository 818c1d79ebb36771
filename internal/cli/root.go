// Package cli implements the guidgen command tree.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid/internal/config"
)

// EnvTrace enables trace logging when set to "true".
const EnvTrace = "GUIDGEN_TRACE"

type options struct {
	configPath string
	cfg        *config.Config
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "guidgen",
		Short:         "guidgen generates, converts and inspects GUIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "f", "", "config file")
	pf.Bool("debug", false, "debug logging to the console")
	pf.String("log-level", "", "log level (trace, debug, info, warn, error)")
	pf.Bool("console", false, "human readable log output")

	root.AddCommand(
		newSeqCmd(opts),
		newNameCmd(opts),
		newSwapCmd(opts),
		newSortCmd(opts),
		newFingerprintCmd(opts),
		newKeysCmd(opts),
		newInspectCmd(opts),
	)
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("console") {
		cfg.Log.Console, _ = flags.GetBool("console")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	level, _ := cfg.LogLevel()
	debug, _ := flags.GetBool("debug")
	if debug {
		level = zerolog.DebugLevel
	}
	if strings.ToLower(os.Getenv(EnvTrace)) == "true" {
		level = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(level)

	if debug || cfg.Log.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	} else {
		log.Logger = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	}
	log.Trace().Str("config", o.configPath).Msg("configured")
	return nil
}

// setting returns the flag value when it was given, otherwise the config value.
func setting(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

// Execute runs guidgen and exits non-zero on error.
func Execute() {
	os.Exit(execute(NewRootCmd()))
}

// execute runs root and logs a failure through the global logger, which
// writes to stderr.
func execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("guidgen failed")
		return 1
	}
	return 0
}
