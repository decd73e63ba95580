// Package render defines the capability shared by the catalog renderers:
// one catalog in, one document out.
package render

import (
	"context"
	"io"

	"github.com/Xunop/bookserver/internal/model"
)

// Renderer builds a document from a catalog in a single synchronous pass.
// Renderers never mutate the catalog, so independent renders may share it.
type Renderer interface {
	Render(ctx context.Context, c *model.Catalog) (Document, error)
}

// Document is a rendered catalog. Each implementation also exposes its
// constructed tree for embedding.
type Document interface {
	// ContentType is the media type of the serialised document.
	ContentType() string
	// Bytes returns the pretty-printed document.
	Bytes() ([]byte, error)
	io.WriterTo
}

// WriteBytes writes the serialised form of d to w.
func WriteBytes(w io.Writer, d Document) (int64, error) {
	b, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
