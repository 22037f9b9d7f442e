package main

import (
	"github.com/Abraxas-365/campus/pkg/config"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/Abraxas-365/campus/recruitment/posting/postinginfra"
	"github.com/spf13/cobra"
)

func newReconcileCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile-counters",
		Short: "Recompute job_postings.applications_count from the applications table",
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

			fixed, err := postinginfra.NewPostgresPostingRepository(db).RecountApplications(cmd.Context())
			if err != nil {
				return err
			}
			logx.WithFields(logx.Fields{"postings_updated": fixed}).Infof("Application counters reconciled")
			return nil
		},
	}
}
