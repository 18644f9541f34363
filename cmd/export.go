/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/export"
	"github.com/devfolio/apiserver/internal/pages"
	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/storage"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Prerenders every API response and page payload to JSON files",
	Long: `Loads the documents from the configured backend and writes every API
resource and page payload to static JSON files. Usage:

	devfolio export --out ./public
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		out, _ := cmd.Flags().GetString("out")

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		backend, err := storage.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer backend.Close()

		repo, err := store.Load(ctx, backend, log)
		if err != nil {
			return fmt.Errorf("load documents: %w", err)
		}

		portfolio := services.NewPortfolioService(repo)
		dashboard := services.NewDashboardService(repo)
		files := export.Files(portfolio, dashboard, pages.NewLoader(portfolio, dashboard))
		return export.Write(ctx, out, files, log)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "dist", "Output directory")
}
