package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trustlend/internal/adapter/repository/gormrepo"
	"trustlend/internal/infrastructure/db"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ledger tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
			if err != nil {
				return err
			}
			defer closeDB(gdb)

			if err := gdb.WithContext(cmd.Context()).AutoMigrate(gormrepo.Models()...); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			zap.L().Info("schema migrated", zap.String("driver", cfg.DBDriver))
			return nil
		},
	}
}
