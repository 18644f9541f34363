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

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Uploads the local documents to the configured backend",
	Long: `Reads the documents from a local directory and uploads them to the
backend selected by DATA_BACKEND. Usage:

	DATA_BACKEND=minio devfolio publish --from ./data
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		from, _ := cmd.Flags().GetString("from")
		if from == "" {
			from = cfg.Data.Dir
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		source, err := storage.NewFSClient(from)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		target, err := storage.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer target.Close()

		log.Info("publishing documents", "from", from, "backend", cfg.Data.Backend, "bucket", target.Bucket())
		return store.Publish(ctx, storage.NewStorage(source, ""), target, log)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().String("from", "", "Directory holding the documents (defaults to DATA_DIR)")
}
