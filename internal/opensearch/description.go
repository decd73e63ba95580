// Package opensearch loads OpenSearch description documents.
package opensearch

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

const Namespace = "http://a9.com/-/spec/opensearch/1.1/"

// ErrNoAtomTemplate is returned when a description offers no Atom search URL.
var ErrNoAtomTemplate = errors.New("opensearch: no atom url template")

// Description is the subset of an OpenSearch description used to build a
// search form.
type Description struct {
	XMLName     xml.Name `xml:"http://a9.com/-/spec/opensearch/1.1/ OpenSearchDescription"`
	ShortName   string   `xml:"ShortName"`
	Description string   `xml:"Description"`
	URLs        []URL    `xml:"Url"`
}

type URL struct {
	Type     string `xml:"type,attr"`
	Template string `xml:"template,attr"`
}

// URLByType returns the first URL template offered for mime.
func (d *Description) URLByType(mime string) (URL, bool) {
	for _, u := range d.URLs {
		if u.Type == mime {
			return u, true
		}
	}
	return URL{}, false
}

// Parse decodes a description document.
func Parse(r io.Reader) (*Description, error) {
	d := &Description{}
	if err := xml.NewDecoder(r).Decode(d); err != nil {
		return nil, errors.Wrap(err, "decode opensearch description")
	}
	return d, nil
}
