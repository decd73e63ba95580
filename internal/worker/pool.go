package worker

import (
	"context"
	"sort"
	"sync"

	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/render/formats"
	"github.com/Xunop/bookserver/internal/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrOutputTaken is returned for a job whose output file was already
// claimed by an earlier job of the same pool.
var ErrOutputTaken = errors.New("output file already claimed by another job")

type WorkPool interface {
	Push(job Job)
}

// RenderPool renders catalogs with a fixed number of workers. Push and
// Wait must be called from one goroutine.
type RenderPool struct {
	queue chan Job
	wg    sync.WaitGroup

	// claimed maps output file names to the job that writes them.
	claimed map[string]Job

	mu      sync.Mutex
	results []Result
}

// NewRenderPool starts size workers that save their output to store.
func NewRenderPool(ctx context.Context, store storage.Storage, opts formats.Options, size int) *RenderPool {
	if size < 1 {
		size = 1
	}
	pool := &RenderPool{
		queue:   make(chan Job),
		claimed: make(map[string]Job),
	}

	for i := 0; i < size; i++ {
		worker := &RenderWorker{id: i, ctx: ctx, storage: store, opts: opts, report: pool.record}
		go worker.Run(pool.queue)
	}
	return pool
}

// Push implements WorkPool. It blocks until a worker takes the job. A job
// that would write the same output file as an earlier job fails at once
// instead of overwriting it.
func (p *RenderPool) Push(job Job) {
	p.wg.Add(1)
	if ext, err := formats.Extension(job.Format); err == nil {
		name := outputName(job.Path, ext)
		if first, ok := p.claimed[name]; ok {
			log.Error("Output file already claimed",
				zap.String("output", name),
				zap.String("path", job.Path),
				zap.String("claimed_by", first.Path))
			p.record(Result{
				Job: job,
				Err: errors.Wrapf(ErrOutputTaken, "%s (job %d, %s)", name, first.ID, first.Path),
			})
			return
		}
		p.claimed[name] = job
	}
	p.queue <- job
}

// Wait stops the workers once every pushed job is done and returns the
// results ordered by job id. No job may be pushed after Wait.
func (p *RenderPool) Wait() []Result {
	p.wg.Wait()
	close(p.queue)

	p.mu.Lock()
	defer p.mu.Unlock()
	results := make([]Result, len(p.results))
	copy(results, p.results)
	sort.Slice(results, func(i, j int) bool { return results[i].Job.ID < results[j].Job.ID })
	return results
}

func (p *RenderPool) record(r Result) {
	p.mu.Lock()
	p.results = append(p.results, r)
	p.mu.Unlock()
	p.wg.Done()
}
