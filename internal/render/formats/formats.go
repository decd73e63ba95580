// Package formats builds catalog renderers by output format name.
package formats

import (
	"sort"
	"strings"

	"github.com/Xunop/bookserver/internal/device"
	"github.com/Xunop/bookserver/internal/opensearch"
	"github.com/Xunop/bookserver/internal/render"
	"github.com/Xunop/bookserver/internal/render/atom"
	"github.com/Xunop/bookserver/internal/render/htmlpage"
	"github.com/Xunop/bookserver/internal/render/solr"
	"github.com/pkg/errors"
)

const (
	Atom = "atom"
	HTML = "html"
	Solr = "solr"
)

var ErrUnknownFormat = errors.New("unknown output format")

var extensions = map[string]string{
	Atom: ".xml",
	HTML: ".html",
	Solr: ".solr.xml",
}

// Options carries the settings of every renderer; each format reads the
// ones it needs.
type Options struct {
	// Atom
	FabricateContent bool

	// HTML
	Device       device.Profile
	Query        string
	Resolver     opensearch.Resolver
	Stylesheet   string
	SearchAction string

	// HTML search button and Solr provider field
	Provider string
}

// New returns the renderer for the named format.
func New(name string, opts Options) (render.Renderer, error) {
	switch strings.ToLower(name) {
	case Atom:
		return atom.New(opts.FabricateContent), nil
	case HTML:
		r := htmlpage.New(opts.Resolver)
		r.Device = opts.Device
		r.Query = opts.Query
		r.Provider = opts.Provider
		if opts.Stylesheet != "" {
			r.Stylesheet = opts.Stylesheet
		}
		if opts.SearchAction != "" {
			r.SearchAction = opts.SearchAction
		}
		return r, nil
	case Solr:
		return solr.New(opts.Provider), nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Extension is the file suffix used when a document of the named format
// is saved.
func Extension(name string) (string, error) {
	ext, ok := extensions[strings.ToLower(name)]
	if !ok {
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
	return ext, nil
}

// Names lists the known formats.
func Names() []string {
	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
