package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"storefront.GO/config"
	"storefront.GO/core/session"
	"storefront.GO/cron"
	"storefront.GO/service/catalog"
)

var serveNoCron bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront HTTP server and the cron scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadAppConfig()
		cfg := config.AppConfig

		config.InitRedis()
		config.PingRedis()
		store := sessionStore()

		products, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Printf("Catalog unavailable, serving an empty page: %v", err)
		}
		log.Printf("Loaded %d products from %s", len(products), cfg.CatalogPath)

		e, err := NewServer(cfg, products, store)
		if err != nil {
			return err
		}

		fonts := []string{"banner", "big", "slant", "standard", "small", "doom"}
		figure.NewFigure(cfg.AppName, fonts[rand.Intn(len(fonts))], true).Print()
		fmt.Println()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			log.Printf("Server running on :%s (cart service %s)", cfg.Port, cfg.CartBaseURL)
			if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})
		if !serveNoCron {
			g.Go(func() error {
				c := cron.StartCron()
				log.Println("Cron scheduler started.")
				<-ctx.Done()
				<-c.Stop().Done()
				return nil
			})
		}
		return g.Wait()
	},
}

// sessionStore prefers Redis and falls back to the process-local store.
func sessionStore() session.Store {
	if config.RedisClient != nil {
		return session.NewRedisStore(config.RedisClient, "")
	}
	return session.GetInstance()
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoCron, "no-cron", false, "Do not start the cron scheduler")
	rootCmd.AddCommand(serveCmd)
}
