package main

import (
	"github.com/Abraxas-365/campus/internal/database"
	"github.com/Abraxas-365/campus/pkg/config"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logx.Configure(cfg.Log.Level, cfg.Log.Format)

			db, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			logx.Info("Schema is up to date")
			return nil
		},
	}
}
