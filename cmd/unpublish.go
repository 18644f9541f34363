/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/storage"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// unpublishCmd represents the unpublish command
var unpublishCmd = &cobra.Command{
	Use:   "unpublish",
	Short: "Removes the published documents from the configured backend",
	Long: `Deletes every document key from the backend selected by DATA_BACKEND.
The bucket or table itself is left in place. Usage:

	DATA_BACKEND=minio devfolio unpublish
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		target, err := storage.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer target.Close()

		log.Info("unpublishing documents", "backend", cfg.Data.Backend, "bucket", target.Bucket())
		return store.Unpublish(ctx, target, log)
	},
}

func init() {
	rootCmd.AddCommand(unpublishCmd)
}
