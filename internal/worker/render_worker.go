package worker

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/render/formats"
	"github.com/Xunop/bookserver/internal/render/solr"
	"github.com/Xunop/bookserver/internal/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Worker interface {
	Run(c <-chan Job)
}

type RenderWorker struct {
	id      int
	ctx     context.Context
	storage storage.Storage
	opts    formats.Options
	report  func(Result)
}

// Run renders jobs until the channel is closed.
func (w *RenderWorker) Run(c <-chan Job) {
	log.Debug("RenderWorker is running", zap.Int("worker_id", w.id))

	for job := range c {
		log.Debug("Job received by worker",
			zap.Int("worker_id", w.id),
			zap.Int("job_id", job.ID),
			zap.String("path", job.Path),
			zap.String("format", job.Format))

		startTime := time.Now()
		result := w.render(job)
		if result.Err != nil {
			log.Error("Unable to render catalog",
				zap.Int("job_id", job.ID),
				zap.String("path", job.Path),
				zap.Error(result.Err))
		} else {
			log.Info("Rendered catalog",
				zap.String("path", job.Path),
				zap.String("output", result.Output),
				zap.Int("skipped", result.Skipped),
				zap.Duration("duration", time.Since(startTime)))
		}
		w.report(result)
	}
}

func (w *RenderWorker) render(job Job) Result {
	result := Result{Job: job}
	if err := w.ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	ext, err := formats.Extension(job.Format)
	if err != nil {
		result.Err = err
		return result
	}
	renderer, err := formats.New(job.Format, w.opts)
	if err != nil {
		result.Err = err
		return result
	}

	catalog, err := model.LoadFile(job.Path)
	if err != nil {
		result.Err = err
		return result
	}

	doc, err := renderer.Render(w.ctx, catalog)
	if err != nil {
		result.Err = errors.Wrapf(err, "render %s", job.Path)
		return result
	}
	if batch, ok := doc.(*solr.Document); ok {
		result.Skipped = len(batch.Skipped)
	}

	data, err := doc.Bytes()
	if err != nil {
		result.Err = err
		return result
	}

	result.Output, result.Err = w.storage.Save(outputName(job.Path, ext), data)
	return result
}

// outputName replaces the extension of the catalog file with ext.
func outputName(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
