package atom

import "encoding/xml"

const (
	NamespaceAtom    = "http://www.w3.org/2005/Atom"
	NamespaceDCTerms = "http://purl.org/dc/terms/"
	NamespaceOPDS    = "http://opds-spec.org/"
)

// Feed is the root of an OPDS catalog document.
type Feed struct {
	XMLName      xml.Name `xml:"feed"`
	Xmlns        string   `xml:"xmlns,attr"`
	XmlnsDCTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsOPDS    string   `xml:"xmlns:opds,attr"`
	Base         string   `xml:"xml:base,attr,omitempty"`

	Title   string  `xml:"title"`
	ID      string  `xml:"id"`
	Updated string  `xml:"updated"`
	Links   []Link  `xml:"link"`
	Author  Person  `xml:"author"`
	Entries []Entry `xml:"entry"`
}

type Person struct {
	Name string `xml:"name"`
	URI  string `xml:"uri,omitempty"`
}

// Entry is one publication or navigation item.
type Entry struct {
	Title      string     `xml:"title"`
	ID         string     `xml:"id"`
	Updated    string     `xml:"updated"`
	Links      []Link     `xml:"link"`
	Issued     string     `xml:"dcterms:issued,omitempty"`
	Published  string     `xml:"published,omitempty"`
	Authors    []Person   `xml:"author"`
	Categories []Category `xml:"category"`
	Publisher  string     `xml:"dcterms:publisher,omitempty"`
	Languages  []string   `xml:"dcterms:language"`
	Summary    *Text      `xml:"summary"`
	Content    *Text      `xml:"content"`
}

type Category struct {
	Term  string `xml:"term,attr"`
	Label string `xml:"label,attr"`
}

type Text struct {
	Type string `xml:"type,attr,omitempty"`
	Body string `xml:",chardata"`
}

// Link is an Atom link with the OPDS acquisition extensions.
type Link struct {
	Href  string `xml:"href,attr"`
	Type  string `xml:"type,attr,omitempty"`
	Title string `xml:"title,attr,omitempty"`
	Rel   string `xml:"rel,attr,omitempty"`

	Price                *Price                `xml:"opds:price"`
	Formats              []string              `xml:"dcterms:hasFormat"`
	Availability         *Availability         `xml:"opds:availability"`
	Unavailable          *Unavailable          `xml:"opds:unavailable"`
	Holds                *Holds                `xml:"opds:holds"`
	Copies               *Copies               `xml:"opds:copies"`
	IndirectAcquisitions []IndirectAcquisition `xml:"opds:indirectAcquisition"`
}

type Price struct {
	CurrencyCode string `xml:"currencycode,attr,omitempty"`
	Value        string `xml:",chardata"`
}

type Availability struct {
	Status string `xml:"status,attr"`
}

type Unavailable struct {
	Date string `xml:"date,attr"`
}

type Holds struct {
	Total int `xml:"total,attr"`
}

type Copies struct {
	Total     int `xml:"total,attr"`
	Available int `xml:"available,attr"`
}

// IndirectAcquisition describes a wrapper format and what it contains.
type IndirectAcquisition struct {
	Type   string                `xml:"type,attr"`
	Nested []IndirectAcquisition `xml:"opds:indirectAcquisition"`
}
