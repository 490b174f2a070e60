package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"storefront.GO/api"
	"storefront.GO/config"
	"storefront.GO/core/auth"
	sandboxRepo "storefront.GO/model/repository/sandbox"
	"storefront.GO/sandbox"
	"storefront.GO/service/catalog"
)

var (
	sandboxStock  int
	sandboxReseed bool
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Run a local cart service seeded from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadAppConfig()
		cfg := config.AppConfig

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		repo := sandboxRepo.NewSandboxRepository(db, cfg.InventoryTrackers...)
		if err := repo.AutoMigrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		if sandboxReseed {
			products, err := catalog.LoadFile(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			stock := cfg.SandboxStock
			if cmd.Flags().Changed("stock") {
				stock = sandboxStock
			}
			n, err := sandbox.Seed(repo, products, stock)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			log.Printf("Seeded %d variants with stock %d", n, stock)
		}

		e := newEcho()
		sandbox.RegisterRoutes(e, repo)
		apiGroup := e.Group("/api")
		apiGroup.Use(auth.Middleware())
		api.ApplyModules(apiGroup, db)

		log.Printf("Sandbox cart service on :%s", cfg.SandboxPort)
		return e.Start(":" + cfg.SandboxPort)
	},
}

func init() {
	sandboxCmd.Flags().IntVar(&sandboxStock, "stock", 0, "Stock per available variant (default SANDBOX_STOCK)")
	sandboxCmd.Flags().BoolVar(&sandboxReseed, "seed", true, "Seed variants from the catalog before serving")
	rootCmd.AddCommand(sandboxCmd)
}
