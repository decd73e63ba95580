package server

import (
	"net/http"

	"github.com/Xunop/bookserver/internal/config"
	"github.com/Xunop/bookserver/internal/device"
	"github.com/Xunop/bookserver/internal/http/request"
	"github.com/Xunop/bookserver/internal/http/response"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/opensearch"
	"github.com/Xunop/bookserver/internal/render/formats"
	"github.com/pkg/errors"
)

type handler struct {
	opts     *config.Options
	catalog  *model.Catalog
	resolver opensearch.Resolver
}

func (h *handler) atomFeed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, formats.Atom, formats.Options{FabricateContent: h.opts.FabricateContent})
}

func (h *handler) htmlPage(w http.ResponseWriter, r *http.Request) {
	opts := formats.Options{
		Query:        request.QueryStringParam(r, "q", ""),
		Provider:     request.QueryStringParam(r, "provider", ""),
		Resolver:     h.resolver,
		Stylesheet:   h.opts.Stylesheet,
		SearchAction: h.opts.SearchAction,
	}

	if name := request.QueryStringParam(r, "device", ""); name != "" {
		profile, ok := device.Lookup(name)
		if !ok {
			response.BadRequest(w, r, errors.Errorf("unknown device %q", name))
			return
		}
		opts.Device = profile
	}

	h.render(w, r, formats.HTML, opts)
}

func (h *handler) solrBatch(w http.ResponseWriter, r *http.Request) {
	provider := request.QueryStringParam(r, "provider", h.opts.Provider)
	h.render(w, r, formats.Solr, formats.Options{Provider: provider})
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, format string, opts formats.Options) {
	renderer, err := formats.New(format, opts)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	doc, err := renderer.Render(r.Context(), h.catalog)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	response.Document(w, r, doc)
}
