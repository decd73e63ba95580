// Package solr renders a catalog as a Solr add command for the search
// index.
package solr

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"github.com/Xunop/bookserver/internal/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const ContentType = "application/xml; charset=utf-8"

const (
	// RestrictedRights marks Feedbooks titles that may not be indexed.
	RestrictedRights = "This work is available for countries where copyright is Life+70."
	// NoDescription is the Feedbooks placeholder for a missing summary.
	NoDescription = "No description available."

	defaultPrice    = "0.00"
	defaultCurrency = "USD"

	catchAllField = "text"
)

// Skip reasons.
const (
	ReasonNotEbook      = "not an ebook"
	ReasonNoAlphanum    = "title has no alphanumeric character"
	ReasonRestrictedUse = "restricted rights"
)

// leadingTrim is what is cut from the front of a title before it is used
// for sorting.
const leadingTrim = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ \t\n\r\v\f"

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

type Add struct {
	XMLName xml.Name `xml:"add"`
	Docs    []Doc    `xml:"doc"`
}

type Doc struct {
	Fields []Field `xml:"field"`
}

type Field struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Values returns every value stored under name, in order.
func (d Doc) Values(name string) []string {
	var out []string
	for _, f := range d.Fields {
		if f.Name == name {
			out = append(out, f.Value)
		}
	}
	return out
}

// Skip records an entry left out of the batch.
type Skip struct {
	URN    string
	Title  string
	Reason string
}

// Renderer builds index batches for one provider.
type Renderer struct {
	Provider string
}

func New(provider string) *Renderer {
	return &Renderer{Provider: provider}
}

// Document is a rendered batch.
type Document struct {
	Add     *Add
	Skipped []Skip
}

func (d *Document) ContentType() string {
	return ContentType
}

func (d *Document) Bytes() ([]byte, error) {
	out, err := xml.MarshalIndent(d.Add, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal solr batch")
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(out)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return render.WriteBytes(w, d)
}

func (r *Renderer) Render(_ context.Context, c *model.Catalog) (render.Document, error) {
	return r.Batch(c), nil
}

// Batch builds one document per qualifying entry. Entries that do not
// qualify are logged and listed in Skipped.
func (r *Renderer) Batch(c *model.Catalog) *Document {
	d := &Document{Add: &Add{Docs: []Doc{}}}
	for _, e := range c.Entries {
		if reason := disqualify(e); reason != "" {
			log.Info("Not indexing entry",
				zap.String("title", e.Title),
				zap.String("urn", e.URN),
				zap.String("reason", reason))
			d.Skipped = append(d.Skipped, Skip{URN: e.URN, Title: e.Title, Reason: reason})
			continue
		}
		d.Add.Docs = append(d.Add.Docs, r.doc(e))
	}
	return d
}

// disqualify returns why e must not be indexed, or "".
func disqualify(e *model.Entry) string {
	if !hasIndexFormat(e) {
		return ReasonNotEbook
	}
	if strings.IndexFunc(e.Title, isWordChar) < 0 {
		return ReasonNoAlphanum
	}
	if e.Rights == RestrictedRights {
		return ReasonRestrictedUse
	}
	return ""
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func hasIndexFormat(e *model.Entry) bool {
	for _, l := range e.Links {
		if _, ok := indexFormat(l); ok {
			return true
		}
	}
	return false
}

// indexFormat returns the format tag a link is indexed under. O'Reilly
// feeds only carry a buynow web page.
func indexFormat(l model.Link) (string, bool) {
	switch l.Type {
	case model.TypePDF:
		return "pdf", true
	case model.TypeEPUB:
		return "epub", true
	case model.TypeMOBI:
		return "mobi", true
	case model.TypeHTML:
		if l.Rel == model.RelBuyNow {
			return "shoppingcart", true
		}
	}
	return "", false
}

type docBuilder struct {
	Doc
}

func (b *docBuilder) add(name, value string, catchAll bool) {
	if value == "" {
		return
	}
	b.Fields = append(b.Fields, Field{Name: name, Value: value})
	if catchAll {
		b.Fields = append(b.Fields, Field{Name: catchAllField, Value: value})
	}
}

func (b *docBuilder) addList(name string, values []string, catchAll bool) {
	for _, v := range values {
		b.add(name, v, catchAll)
	}
}

func (r *Renderer) doc(e *model.Entry) Doc {
	b := &docBuilder{}
	b.add("urn", e.URN, false)
	b.add("provider", r.Provider, false)
	b.add("title", e.Title, true)
	b.add("rights", e.Rights, true)
	b.add("publisher", e.Publisher, true)

	b.addList("creator", e.Authors, true)
	b.addList("language", e.Languages, false)
	b.addList("subject", e.Subjects, true)

	if e.Updated != "" {
		updated, err := NormalizeDate(e.Updated)
		if err != nil {
			log.Warn("Unable to index updated date", zap.String("title", e.Title), zap.Error(err))
		}
		b.add("updated", updated, false)
	}

	if e.Summary != NoDescription {
		b.add("summary", e.Summary, true)
	}

	if e.Date != "" {
		if t, err := yearDate(e.Date); err != nil {
			log.Warn("Unable to index publication year", zap.String("title", e.Title), zap.Error(err))
		} else {
			b.add("date", formatTime(t), false)
		}
	}

	sortTitle := strings.TrimLeft(e.Title, leadingTrim)
	if first, _ := utf8.DecodeRuneInString(sortTitle); sortTitle != "" {
		b.add("firstTitle", upper.String(string(first)), false)
	} else {
		log.Warn("Unable to index first title letter", zap.String("title", e.Title))
	}
	b.add("titleSorter", lower.String(sortTitle), false)

	// A single price is indexed per document; the last priced link wins.
	var price, currency string
	for _, l := range e.Links {
		format, ok := indexFormat(l)
		if !ok {
			continue
		}
		b.add("format", format, false)
		b.add("link", l.URL, false)
		if l.Price != "" {
			price, currency = l.Price, l.CurrencyCode
		}
	}
	if price == "" {
		price = defaultPrice
		currency = defaultCurrency
	} else if currency == "" {
		currency = defaultCurrency
	}
	b.add("price", price, false)
	b.add("currencyCode", currency, false)

	return b.Doc
}
