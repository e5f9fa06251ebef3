package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trustlend/internal/config"
	"trustlend/pkg/logger"
)

const programName = "trustlend"

var (
	globalFlags = struct {
		logLevel string
	}{}
	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Trust-scored micro-lending and staking ledger",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				c.LogLvl = globalFlags.logLevel
			}
			if err := c.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := logger.InitLogger(c.LogLvl); err != nil {
				return err
			}
			cfg = c
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&globalFlags.logLevel, "log-level", "info", "log level (debug, info, warn, error); overrides LOG_LVL")

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())

	if err := rootCmd.Execute(); err != nil {
		_ = zap.L().Sync()
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
