package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Xunop/bookserver/internal/config"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/opensearch"
	"github.com/Xunop/bookserver/internal/render/atom"
	"github.com/Xunop/bookserver/internal/render/htmlpage"
	"github.com/Xunop/bookserver/internal/render/solr"
	gofeedatom "github.com/mmcdole/gofeed/atom"
)

const osdURL = "http://bookserver.archive.org/catalog/opensearch.xml"

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := &model.Catalog{
		Title:   "Internet Archive OPDS",
		URN:     "urn:x-internet-archive:bookserver:catalog",
		URL:     "http://bookserver.archive.org/catalog/",
		Created: time.Date(2010, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	c.AddOpenSearch(osdURL)
	c.AddEntry(&model.Entry{
		URN:     "urn:x-internet-archive:item:itemid",
		Title:   "test item",
		Updated: "2009-01-01T00:00:00Z",
		Links: []model.Link{{
			URL:  "http://archive.org/download/itemid.epub",
			Type: model.TypeEPUB,
			Rel:  model.RelAcquisition,
		}},
	})
	resolver := opensearch.StaticResolver{
		osdURL: {ShortName: "Search", URLs: []opensearch.URL{{Type: model.TypeOPDS, Template: "/search?q={searchTerms}"}}},
	}

	srv := httptest.NewServer(NewHandler(config.GetDefaultOptions(), c, resolver))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestAtomFeed(t *testing.T) {
	srv := testServer(t)
	resp, body := get(t, srv, "/catalog.xml")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf(`Unexpected status code %d`, resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != atom.ContentType {
		t.Fatalf(`Unexpected content type %q`, got)
	}

	feed, err := (&gofeedatom.Parser{}).Parse(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Entries) != 1 || feed.Entries[0].Title != "test item" {
		t.Fatalf(`Unexpected entries %+v`, feed.Entries)
	}
}

func TestHTMLPage(t *testing.T) {
	srv := testServer(t)
	resp, body := get(t, srv, "/catalog.html?q=tom&device=kindle&provider=IA")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf(`Unexpected status code %d`, resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != htmlpage.ContentType {
		t.Fatalf(`Unexpected content type %q`, got)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := doc.Find("input#opds-search-terms").Attr("value"); v != "tom" {
		t.Errorf(`Unexpected query value %q`, v)
	}
	if n := doc.Find("input.opds-search-submit").Length(); n != 3 {
		t.Errorf(`Expected 3 submit buttons, got %d`, n)
	}
	if href, _ := doc.Find("a.opds-entry-link").Attr("href"); href != "http://archive.org/download/itemid.mobi" {
		t.Errorf(`Kindle link was not rewritten: %q`, href)
	}
}

func TestUnknownDevice(t *testing.T) {
	srv := testServer(t)
	resp, _ := get(t, srv, "/catalog.html?device=walkman")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf(`Unexpected status code %d`, resp.StatusCode)
	}
}

func TestSolrBatch(t *testing.T) {
	srv := testServer(t)

	scenarios := map[string]string{
		"/solr.xml":                    `<field name="provider">IA</field>`,
		"/solr.xml?provider=Feedbooks": `<field name="provider">Feedbooks</field>`,
	}
	for path, want := range scenarios {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, srv, path)
			if got := resp.Header.Get("Content-Type"); got != solr.ContentType {
				t.Fatalf(`Unexpected content type %q`, got)
			}
			if !strings.Contains(body, want) {
				t.Errorf(`Expected %s in %s`, want, body)
			}
		})
	}
}

func TestHealthcheckAndVersion(t *testing.T) {
	srv := testServer(t)

	if _, body := get(t, srv, "/healthcheck"); body != "OK" {
		t.Errorf(`Unexpected healthcheck body %q`, body)
	}
	if _, body := get(t, srv, "/version"); body != config.Opts.Version {
		t.Errorf(`Unexpected version %q`, body)
	}
}

func TestNotFound(t *testing.T) {
	srv := testServer(t)
	resp, _ := get(t, srv, "/catalog.pdf")

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf(`Unexpected status code %d`, resp.StatusCode)
	}
}

func TestStartServer(t *testing.T) {
	config.GetDefaultOptions()
	config.Opts.Host = "127.0.0.1"
	config.Opts.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	server, err := StartServer(ctx, &model.Catalog{Title: "empty"})
	if err != nil {
		t.Fatal(err)
	}
	if server.Addr != "127.0.0.1:0" {
		t.Errorf(`Unexpected address %q`, server.Addr)
	}
	if err := server.Shutdown(ctx); err != nil {
		t.Fatal(err)
	}
}
