package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfcpress/rfcpress/internal/config"
	"github.com/rfcpress/rfcpress/internal/db"
	"github.com/rfcpress/rfcpress/internal/glossary"
	"github.com/rfcpress/rfcpress/internal/server"
	"github.com/rfcpress/rfcpress/internal/site"
)

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally",
	Long: `Builds the site, then serves it with the glossary API on top. With
--watch, content changes rebuild the site and connected browsers
reload automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		gen := site.NewGenerator(cfg, nil)
		result, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		log.Printf("built %d pages", result.Pages)

		idx, err := glossary.LoadFile(filepath.Join(cfg.ContentDir, cfg.Glossary))
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "rfcpress.db"))
		if err != nil {
			return fmt.Errorf("opening miss log: %w", err)
		}
		defer database.Close()

		var hub *server.ReloadHub
		if serveWatch {
			hub = server.NewReloadHub()
			go func() {
				err := hub.Watch(cfg.ContentDir, func() error {
					_, err := site.NewGenerator(cfg, nil).Generate()
					return err
				})
				if err != nil {
					log.Printf("watch stopped: %v", err)
				}
			}()
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			SiteDir:  cfg.OutputDir,
			AllowAll: serveWatch,
		}, database, idx, hub)

		// Graceful shutdown on interrupt.
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-done
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}()

		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "rebuild on content changes and live-reload browsers")
	rootCmd.AddCommand(serveCmd)
}
