// Package atom renders a catalog as an OPDS Atom feed.
package atom

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const ContentType = "application/atom+xml;charset=utf-8;profile=opds-catalog"

const (
	relCrawlable      = "http://opds-spec.org/crawlable"
	relAuthentication = "http://opds-spec.org/auth/document"

	typeOpenSearch     = "application/opensearchdescription+xml"
	typeAuthentication = "application/vnd.opds.authentication.v1.0+json"
	// typeAdobeDRM wraps the payload of a borrowed book.
	typeAdobeDRM = "application/vnd.adobe.adept+xml"
)

// drmPayloads are the formats advertised inside the DRM wrapper, in order.
var drmPayloads = []string{model.TypeEPUB, model.TypePDF}

// Renderer renders OPDS feeds.
type Renderer struct {
	// FabricateContent synthesises an HTML content element from
	// contributors, downloads and provider when an entry has neither
	// content nor description.
	FabricateContent bool
}

func New(fabricateContent bool) *Renderer {
	return &Renderer{FabricateContent: fabricateContent}
}

// Document is a rendered feed.
type Document struct {
	Feed *Feed
}

func (d *Document) ContentType() string {
	return ContentType
}

func (d *Document) Bytes() ([]byte, error) {
	out, err := xml.MarshalIndent(d.Feed, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal atom feed")
	}
	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(out) + 1)
	buf.WriteString(xml.Header)
	buf.Write(out)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return render.WriteBytes(w, d)
}

// Render builds the feed for c.
func (r *Renderer) Render(_ context.Context, c *model.Catalog) (render.Document, error) {
	return r.Feed(c), nil
}

// Feed builds the feed document for c.
func (r *Renderer) Feed(c *model.Catalog) *Document {
	feed := newRoot(c)

	if c.OpenSearch != nil && c.OpenSearch.DescriptionURL != "" {
		feed.Links = append(feed.Links, relLink("search", c.OpenSearch.DescriptionURL, "", typeOpenSearch))
	}

	if nav := c.Navigation; nav != nil {
		if nav.PrevLink != "" {
			feed.Links = append(feed.Links, relLink("prev", nav.PrevLink, nav.PrevTitle, model.TypeOPDS))
		}
		if nav.NextLink != "" {
			feed.Links = append(feed.Links, relLink("next", nav.NextLink, nav.NextTitle, model.TypeOPDS))
		}
	}

	if c.AuthenticationURL != "" {
		feed.Links = append(feed.Links, relLink(relAuthentication, c.AuthenticationURL, "", typeAuthentication))
	}

	feed.Entries = make([]Entry, 0, len(c.Entries))
	for _, e := range c.Entries {
		feed.Entries = append(feed.Entries, r.entry(e))
	}

	return &Document{Feed: feed}
}

func newRoot(c *model.Catalog) *Feed {
	feed := &Feed{
		Xmlns:        NamespaceAtom,
		XmlnsDCTerms: NamespaceDCTerms,
		XmlnsOPDS:    NamespaceOPDS,
		Base:         c.URL,
		Title:        c.Title,
		ID:           c.URN,
		Updated:      c.DateString(),
		Author:       Person{Name: c.Author, URI: c.AuthorURI},
	}
	feed.Links = append(feed.Links, relLink("self", c.URL, "", model.TypeOPDS))

	if c.CrawlableURL != "" {
		feed.Links = append(feed.Links, relLink(relCrawlable, c.CrawlableURL, "Crawlable feed", model.TypeOPDS))
	}
	return feed
}

func relLink(rel, href, title, typ string) Link {
	return Link{Rel: rel, Href: href, Title: title, Type: typ}
}

func (r *Renderer) entry(e *model.Entry) Entry {
	out := Entry{
		Title:   e.Title,
		ID:      entryID(e),
		Updated: e.Updated,
	}

	out.Links = make([]Link, 0, len(e.Links))
	for _, l := range e.Links {
		out.Links = append(out.Links, acquisitionLink(l))
	}

	if e.Date != "" {
		// Some readers only show dcterms:issued, others only published.
		out.Issued = year(e.Date)
		out.Published = e.Date
	}

	for _, a := range e.Authors {
		out.Authors = append(out.Authors, Person{Name: a})
	}
	for _, s := range e.Subjects {
		out.Categories = append(out.Categories, Category{Term: s, Label: s})
	}
	out.Publisher = e.Publisher
	out.Languages = e.Languages

	if len(e.Description) > 0 {
		out.Summary = &Text{Type: "html", Body: strings.Join(e.Description, " ")}
	}

	switch {
	case e.Content != "":
		out.Content = &Text{Body: e.Content}
	case len(e.Description) > 0:
		out.Content = &Text{Type: "html", Body: strings.Join(e.Description, " ")}
	case r.FabricateContent:
		out.Content = &Text{Type: "html", Body: fabricateContent(e)}
	}

	return out
}

// entryID keeps the URN for identified publications. Navigation entries
// use the URL of their first link, which some reading apps require.
func entryID(e *model.Entry) string {
	if e.HasIdentifier() {
		return e.URN
	}
	if len(e.Links) > 0 {
		return e.Links[0].URL
	}
	log.Warn("Entry has neither identifier nor links, using its urn as id",
		zap.String("title", e.Title),
		zap.String("urn", e.URN))
	return e.URN
}

func year(date string) string {
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

func acquisitionLink(l model.Link) Link {
	out := Link{
		Href:  l.URL,
		Type:  l.Type,
		Title: l.Title,
		Rel:   l.Rel,
	}

	if l.Price != "" {
		out.Price = &Price{CurrencyCode: l.CurrencyCode, Value: l.Price}
	}

	out.Formats = l.Formats

	if l.Availability != "" {
		out.Availability = &Availability{Status: l.Availability}
		if l.Availability == model.AvailabilityUnavailable {
			out.Unavailable = &Unavailable{Date: l.UnavailableSince}
		}
	}

	if l.Holds != 0 {
		out.Holds = &Holds{Total: l.Holds}
	}

	if l.Copies != 0 {
		// At most one copy is ever lent at a time.
		out.Copies = &Copies{Total: 1, Available: l.Copies}
	}

	if l.Availability != "" {
		for _, payload := range drmPayloads {
			out.IndirectAcquisitions = append(out.IndirectAcquisitions, IndirectAcquisition{
				Type:   typeAdobeDRM,
				Nested: []IndirectAcquisition{{Type: payload}},
			})
		}
	}

	return out
}

func fabricateContent(e *model.Entry) string {
	var b strings.Builder
	if len(e.Contributors) > 0 {
		b.WriteString("<b>Book contributor: </b>")
		b.WriteString(strings.Join(e.Contributors, ", "))
		b.WriteString("<br/>")
	}
	if e.DownloadsPerMonth != nil {
		b.WriteString(strconv.Itoa(*e.DownloadsPerMonth))
		b.WriteString(" downloads in the last month<br/>")
	}
	if e.Provider != "" {
		b.WriteString("<b>Provider: </b>")
		b.WriteString(e.Provider)
		b.WriteString("<br/>")
	}
	return b.String()
}
