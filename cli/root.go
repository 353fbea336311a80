package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"membrane-calculator/config"
	"membrane-calculator/log"
)

type rootOptions struct {
	presetsFile string
	logLevel    string
	cfg         *config.Config
	logger      *zap.Logger
}

// NewRootCommand builds the membrane command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "membrane",
		Short:         "Estimate the payback of a building membrane",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("presets-file") {
				cfg.Service.PresetsFile = opts.presetsFile
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Service.LogLevel = opts.logLevel
			}
			opts.cfg = cfg
			opts.logger = log.InitLog(cfg.Service.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.presetsFile, "presets-file", "", "YAML file with additional presets")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCommand(opts),
		newEvaluateCommand(opts),
		newReportCommand(opts),
		newPresetsCommand(opts),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
