// Package cli implements the eql command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oleksiybondar/eqlgo/eval"
	"github.com/oleksiybondar/eqlgo/internal/config"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "eql",
	Short:         "EQL expression and slot-rule tooling",
	Long:          `eql parses Element Query Language expressions, evaluates them against JSON node documents, and resolves slot policy rules across collections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		log, err = newLogger(cfg)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (json, console)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.LogFormat == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level), nil
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level), nil
}

func evaluator() eval.Evaluator {
	if cfg.Absent == "error" {
		return eval.Evaluator{Absent: eval.AbsentError}
	}
	return eval.Evaluator{}
}
