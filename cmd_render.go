package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Xunop/bookserver/internal/config"
	"github.com/Xunop/bookserver/internal/device"
	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/opensearch"
	"github.com/Xunop/bookserver/internal/render/formats"
	"github.com/Xunop/bookserver/internal/storage"
	"github.com/Xunop/bookserver/internal/worker"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderFormats  []string
	renderProvider string
	renderOutput   string
	renderDevice   string

	renderCmd = &cobra.Command{
		Use:   "render [flags] catalog.yaml...",
		Short: "Render catalog files into the output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runRender(ctx, args)
		},
	}
)

func init() {
	renderCmd.Flags().StringSliceVarP(&renderFormats, "format", "f", []string{formats.Atom}, "output formats, any of atom, html, solr")
	renderCmd.Flags().StringVarP(&renderProvider, "provider", "p", "", "provider label for solr batches and the html search button")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output directory")
	renderCmd.Flags().StringVar(&renderDevice, "device", "", "rewrite html links for a reading device")
}

func runRender(ctx context.Context, files []string) error {
	opts := formats.Options{
		FabricateContent: config.Opts.FabricateContent,
		Provider:         config.Opts.Provider,
		Resolver:         opensearch.NewHTTPResolver(config.Opts.OpenSearchTimeoutDuration()),
		Stylesheet:       config.Opts.Stylesheet,
		SearchAction:     config.Opts.SearchAction,
	}
	if renderProvider != "" {
		opts.Provider = renderProvider
	}
	if renderDevice != "" {
		profile, ok := device.Lookup(renderDevice)
		if !ok {
			return errors.Errorf("unknown device %q", renderDevice)
		}
		opts.Device = profile
	}
	for _, format := range renderFormats {
		if _, err := formats.Extension(format); err != nil {
			return err
		}
	}

	outputDir := config.Opts.OutputDir
	if renderOutput != "" {
		outputDir = renderOutput
	}

	pool := worker.NewRenderPool(ctx, storage.NewLocalStorage(outputDir), opts, config.Opts.WorkerPoolSize)
	id := 0
	for _, file := range files {
		for _, format := range renderFormats {
			pool.Push(worker.Job{ID: id, Path: file, Format: format})
			id++
		}
	}

	failed := 0
	for _, r := range pool.Wait() {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("Rendering finished", zap.Int("jobs", id), zap.Int("failed", failed))
	if failed > 0 {
		return errors.Errorf("%d of %d render jobs failed", failed, id)
	}
	return nil
}
