// Package htmlpage renders a catalog as a browsable HTML page.
package htmlpage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Xunop/bookserver/internal/device"
	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/opensearch"
	"github.com/Xunop/bookserver/internal/render"
	"github.com/Xunop/bookserver/internal/render/classify"
	"github.com/Xunop/bookserver/internal/render/present"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const ContentType = "text/html; charset=utf-8"

const (
	DefaultStylesheet   = "/static/catalog.css"
	DefaultSearchAction = "/bookserver/catalog/search"
)

// entryDisplayKeys are the entry fields shown on the page, in order.
var entryDisplayKeys = []model.FieldKey{
	model.FieldAuthors,
	model.FieldDate,
	model.FieldPublisher,
	model.FieldProvider,
	model.FieldFormats,
	model.FieldContributors,
	model.FieldLanguages,
	model.FieldDownloadsPerMonth,
	model.FieldSummary,
}

var entryLinkTitles = map[string]string{
	model.TypePDF:        "PDF",
	model.TypeEPUBLegacy: "ePub",
	model.TypeEPUB:       "ePub",
	model.TypeMOBI:       "Mobi",
	model.TypeHTML:       "Website",
}

// Renderer renders HTML catalog pages.
type Renderer struct {
	// Device rewrites entry links for a reading device. May be nil.
	Device device.Profile
	// Query prefills the search box.
	Query string
	// Provider adds a provider scoped search button when set.
	Provider string
	// Resolver loads the catalog's OpenSearch description.
	Resolver     opensearch.Resolver
	Stylesheet   string
	SearchAction string
}

func New(resolver opensearch.Resolver) *Renderer {
	return &Renderer{
		Resolver:     resolver,
		Stylesheet:   DefaultStylesheet,
		SearchAction: DefaultSearchAction,
	}
}

// Document is a rendered page. Root is the document node.
type Document struct {
	Root *html.Node
}

func (d *Document) ContentType() string {
	return ContentType
}

func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := prettyPrint(&buf, d.Root); err != nil {
		return nil, errors.Wrap(err, "serialise html page")
	}
	return buf.Bytes(), nil
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return render.WriteBytes(w, d)
}

// Render builds the page for c. The only error is a field without a
// display label, which means the display table is out of date.
func (r *Renderer) Render(ctx context.Context, c *model.Catalog) (render.Document, error) {
	doc, err := r.Page(ctx, c)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Page builds the page document for c.
func (r *Renderer) Page(ctx context.Context, c *model.Catalog) (*Document, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := sub(doc, "html", nil)
	root.AppendChild(r.head(c))

	body := sub(root, "body", nil)
	header := sub(body, "div", attrs("class", "opds-header"))
	text(header, "Catalog Header")

	body.AppendChild(r.search(ctx, c.OpenSearch))
	body.AppendChild(catalogHeader(c))
	body.AppendChild(navigation(c.Navigation))

	list, err := r.entryList(c.Entries)
	if err != nil {
		return nil, err
	}
	body.AppendChild(list)
	body.AppendChild(navigation(c.Navigation))

	footer := sub(body, "div", attrs("class", "opds-footer"))
	text(footer, "Page Footer Div")

	return &Document{Root: doc}, nil
}

func (r *Renderer) head(c *model.Catalog) *html.Node {
	head := element("head", nil)
	title := sub(head, "title", nil)
	text(title, c.Title)

	stylesheet := r.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	sub(head, "link", attrs("rel", "stylesheet", "type", "text/css", "href", stylesheet))
	return head
}

func (r *Renderer) search(ctx context.Context, ref *model.OpenSearch) *html.Node {
	div := element("div", attrs("class", "opds-search"))
	if ref == nil || ref.DescriptionURL == "" {
		return div
	}

	desc, err := r.resolve(ctx, ref.DescriptionURL)
	if err != nil {
		log.Warn("Unable to load OpenSearch description",
			zap.String("url", ref.DescriptionURL), zap.Error(err))
		comment(div, fmt.Sprintf(" Could not load OpenSearch description from %s ", ref.DescriptionURL))
		return div
	}

	action := r.SearchAction
	if action == "" {
		action = DefaultSearchAction
	}
	form := sub(div, "form", attrs("class", "opds-search-form", "action", action, "method", "get"))

	label := sub(form, "label", attrs("for", "opds-search-terms"))
	text(label, desc.ShortName)
	sub(form, "br", nil)

	terms := sub(form, "input", attrs(
		"class", "opds-search-terms",
		"type", "text",
		"name", "q",
		"id", "opds-search-terms",
		"size", "40",
	))
	if r.Query != "" {
		setAttr(terms, "value", r.Query)
	}

	sub(form, "input", attrs("class", "opds-search-submit", "name", "submit", "type", "submit", "value", "Search"))
	if r.Device != nil && r.Device.Name() == device.KindleName {
		sub(form, "input", attrs("class", "opds-search-submit", "name", "device", "type", "submit", "value", "Search for Kindle"))
	}
	if r.Provider != "" {
		sub(form, "input", attrs("class", "opds-search-submit", "name", "provider", "type", "submit", "value", "Search "+r.Provider))
	}
	return div
}

// resolve loads the description and requires an Atom search template.
func (r *Renderer) resolve(ctx context.Context, url string) (*opensearch.Description, error) {
	if r.Resolver == nil {
		return nil, errors.New("no opensearch resolver configured")
	}
	desc, err := r.Resolver.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}
	if _, ok := desc.URLByType(model.TypeOPDS); !ok {
		return nil, opensearch.ErrNoAtomTemplate
	}
	return desc, nil
}

func catalogHeader(c *model.Catalog) *html.Node {
	div := element("div", attrs("class", "opds-catalog-header"))
	title := sub(div, "h1", attrs("class", "opds-catalog-header-title"))
	text(title, c.Title)
	return div
}

func navigation(nav *model.Navigation) *html.Node {
	div := element("div", attrs("class", "opds-navigation"))
	if nav == nil {
		return div
	}
	if nav.PrevLink != "" {
		div.AppendChild(navigationAnchor("prev", nav.PrevLink, nav.PrevTitle))
	}
	if nav.NextLink != "" {
		div.AppendChild(navigationAnchor("next", nav.NextLink, nav.NextTitle))
	}
	return div
}

// navigationAnchor links to the HTML sibling of a feed page.
func navigationAnchor(rel, url, title string) *html.Node {
	url = htmlURL(url)
	a := element("a", attrs("class", "opds-navigation-anchor", "rel", rel, "href", url))
	if title != "" {
		setAttr(a, "title", title)
		text(a, title)
	}
	return a
}

func htmlURL(url string) string {
	url = strings.TrimSuffix(url, ".xml")
	if !strings.HasSuffix(url, ".html") {
		url += ".html"
	}
	return url
}

func (r *Renderer) entryList(entries []*model.Entry) (*html.Node, error) {
	ul := element("ul", attrs("class", "opds-entry-list"))
	for _, e := range entries {
		p, err := r.entry(e)
		if err != nil {
			return nil, err
		}
		li := sub(ul, "li", attrs("class", "opds-entry-list-item"))
		li.AppendChild(p)
	}
	return ul, nil
}

func (r *Renderer) entry(e *model.Entry) (*html.Node, error) {
	p := element("p", attrs("class", "opds-entry"))

	// The entry's own catalog link becomes the title link and is left out
	// of the grouped links below.
	links := e.CopyLinks()
	titleParent := p
	if i := classify.FindCatalogLink(links); i >= 0 {
		titleParent = sub(p, "a", attrs("class", "opds-entry-title", "href", links[i].URL))
		links = append(links[:i], links[i+1:]...)
	}
	title := sub(titleParent, "h2", attrs("class", "opds-entry-title"))
	text(title, e.Title)

	for _, key := range entryDisplayKeys {
		v, err := e.Field(key)
		if err != nil {
			return nil, err
		}
		if !v.Present() {
			continue
		}
		label, display, err := present.Format(key, v)
		if err != nil {
			return nil, err
		}

		item := sub(p, "span", attrs("class", "opds-entry-item"))
		em := sub(item, "em", attrs("class", "opds-entry-key"))
		text(em, label+":")
		text(item, " ")
		value := sub(item, "span", attrs("class", "opds-entry-value"))
		text(value, display)
		sub(item, "br", nil)
	}

	if len(links) > 0 {
		p.AppendChild(r.entryLinks(links))
	}
	return p, nil
}

func (r *Renderer) entryLinks(links []model.Link) *html.Node {
	div := element("div", attrs("class", "opds-entry-links"))
	for _, g := range classify.Classify(links) {
		span := sub(div, "span", attrs("class", "opds-entry-item"))
		em := sub(span, "em", attrs("class", "opds-entry-key"))
		text(em, g.Label+":")
		text(span, " ")
		for i, l := range g.Links {
			if i > 0 {
				text(span, ", ")
			}
			span.AppendChild(r.entryLink(l))
		}
	}
	return div
}

func (r *Renderer) entryLink(l model.Link) *html.Node {
	if r.Device != nil {
		l = r.Device.FormatLink(l)
	}
	caption, ok := entryLinkTitles[l.Type]
	if !ok {
		caption = l.URL
	}
	a := element("a", attrs("class", "opds-entry-link", "href", l.URL))
	text(a, caption)
	return a
}
