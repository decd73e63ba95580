package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/Xunop/bookserver/internal/config"
	"github.com/Xunop/bookserver/internal/http/response"
	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/opensearch"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// StartServer serves the catalog in the background. The caller shuts the
// returned server down.
func StartServer(ctx context.Context, catalog *model.Catalog) (*http.Server, error) {
	addr := config.Opts.Host
	port := config.Opts.Port
	resolver := opensearch.NewHTTPResolver(config.Opts.OpenSearchTimeoutDuration())

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", addr, port),
		Handler: NewHandler(config.Opts, catalog, resolver),
		// Requests are cancelled with ctx, which also stops OpenSearch fetches.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	startHTTPServer(server)

	return server, nil
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("HTTP server error", zap.Error(err))
			os.Exit(1)
		}
	}()
}

// NewHandler routes the catalog endpoints.
func NewHandler(opts *config.Options, catalog *model.Catalog, resolver opensearch.Resolver) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware)

	h := &handler{opts: opts, catalog: catalog, resolver: resolver}
	router.HandleFunc("/catalog.xml", h.atomFeed).Methods(http.MethodGet).Name("atom")
	router.HandleFunc("/catalog.html", h.htmlPage).Methods(http.MethodGet).Name("html")
	router.HandleFunc("/solr.xml", h.solrBatch).Methods(http.MethodGet).Name("solr")

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		response.Text(w, r, "OK")
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		response.Text(w, r, opts.Version)
	}).Name("version")

	return router
}
