package opensearch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Xunop/bookserver/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Resolver loads the description document found at a URL.
type Resolver interface {
	Resolve(ctx context.Context, url string) (*Description, error)
}

// maxDescriptionSize bounds how much of a response is read.
const maxDescriptionSize = 1 << 20

// HTTPResolver fetches descriptions over HTTP.
type HTTPResolver struct {
	client *http.Client
}

func NewHTTPResolver(timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{client: &http.Client{Timeout: timeout}}
}

func (r *HTTPResolver) Resolve(ctx context.Context, url string) (*Description, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", url)
	}
	req.Header.Set("Accept", "application/opensearchdescription+xml")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	log.Debug("Fetched OpenSearch description",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	d, err := Parse(io.LimitReader(resp.Body, maxDescriptionSize))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", url)
	}
	return d, nil
}

// StaticResolver serves descriptions from memory.
type StaticResolver map[string]*Description

func (r StaticResolver) Resolve(_ context.Context, url string) (*Description, error) {
	d, ok := r[url]
	if !ok {
		return nil, errors.Errorf("no opensearch description for %s", url)
	}
	return d, nil
}
