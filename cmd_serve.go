package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xunop/bookserver/internal/config"
	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var (
	serveCatalog string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve a catalog over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if serveCatalog != "" {
				config.Opts.Catalog = serveCatalog
			}

			catalog, err := model.LoadFile(config.Opts.Catalog)
			if err != nil {
				return err
			}
			log.Info("Catalog loaded",
				zap.String("path", config.Opts.Catalog),
				zap.Int("entries", len(catalog.Entries)))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Print(greetingBanner)
			s, err := server.StartServer(ctx, catalog)
			if err != nil {
				return err
			}

			<-ctx.Done()
			log.Info("Shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.Shutdown(shutdownCtx)
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "catalog file to serve")
}
