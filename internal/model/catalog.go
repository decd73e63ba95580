package model

import "time"

// Catalog is one page of a book catalog. Entries keep insertion order and
// renderers preserve it.
type Catalog struct {
	Title     string    `yaml:"title"`
	URN       string    `yaml:"urn"`
	URL       string    `yaml:"url"`
	Author    string    `yaml:"author"`
	AuthorURI string    `yaml:"authorUri"`
	Created   time.Time `yaml:"created"`

	CrawlableURL      string      `yaml:"crawlableUrl,omitempty"`
	Navigation        *Navigation `yaml:"navigation,omitempty"`
	OpenSearch        *OpenSearch `yaml:"opensearch,omitempty"`
	AuthenticationURL string      `yaml:"authentication,omitempty"`

	Entries []*Entry `yaml:"entries"`
}

// OpenSearch references an OpenSearch description document.
type OpenSearch struct {
	DescriptionURL string `yaml:"url"`
}

func (c *Catalog) AddEntry(e *Entry) {
	c.Entries = append(c.Entries, e)
}

func (c *Catalog) AddNavigation(n *Navigation) {
	c.Navigation = n
}

func (c *Catalog) AddOpenSearch(url string) {
	c.OpenSearch = &OpenSearch{DescriptionURL: url}
}

// DateString is the catalog creation time in the Atom date format.
func (c *Catalog) DateString() string {
	return c.Created.UTC().Format("2006-01-02T15:04:05Z")
}
