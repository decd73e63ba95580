package worker // import "github.com/Xunop/bookserver/internal/worker"

// Job renders one catalog file to one format.
type Job struct {
	ID     int
	Path   string
	Format string
}

// Result is the outcome of a job. Err is set when the job failed; sibling
// jobs are not affected.
type Result struct {
	Job    Job
	Output string
	// Skipped counts entries left out of a Solr batch.
	Skipped int
	Err     error
}
