// Package classify groups an entry's links by commercial relation for display.
package classify

import (
	"github.com/Xunop/bookserver/internal/log"
	"github.com/Xunop/bookserver/internal/model"
	"go.uber.org/zap"
)

// Group labels.
const (
	Free      = "Free"
	Buy       = "Buy"
	Subscribe = "Subscribe"
	Sample    = "Sample"
	Catalog   = "Catalog"
	HTML      = "HTML"
)

// Group is a labelled, ordered run of links.
type Group struct {
	Label string
	Links []model.Link
}

var order = []string{Free, Buy, Subscribe, Sample, Catalog, HTML}

// Label returns the group a link belongs to, or "" when the link is not
// shown in grouped output. Lending links have no group.
func Label(l model.Link) string {
	switch l.Rel {
	case model.RelAcquisition:
		return Free
	case model.RelBuying:
		return Buy
	case model.RelLending:
		return ""
	case model.RelSubscription:
		return Subscribe
	case model.RelSample:
		return Sample
	}
	switch l.Type {
	case model.TypeOPDS:
		return Catalog
	case model.TypeHTML:
		return HTML
	}
	return ""
}

// Classify puts every link into the first matching group. Only non-empty
// groups are returned, always in the order Free, Buy, Subscribe, Sample,
// Catalog, HTML. Links matching no group are dropped.
func Classify(links []model.Link) []Group {
	buckets := make(map[string][]model.Link, len(order))
	for _, l := range links {
		if l.Rel == "" && l.Type == "" {
			log.Debug("Skipping link without rel or type", zap.String("url", l.URL))
			continue
		}
		label := Label(l)
		if label == "" {
			log.Debug("Link matches no display group",
				zap.String("url", l.URL),
				zap.String("rel", l.Rel),
				zap.String("type", l.Type))
			continue
		}
		buckets[label] = append(buckets[label], l)
	}

	groups := make([]Group, 0, len(buckets))
	for _, label := range order {
		if links := buckets[label]; len(links) > 0 {
			groups = append(groups, Group{Label: label, Links: links})
		}
	}
	return groups
}

// FindCatalogLink returns the index of the first link typed as an OPDS
// catalog, or -1.
func FindCatalogLink(links []model.Link) int {
	for i, l := range links {
		if l.Type == model.TypeOPDS {
			return i
		}
	}
	return -1
}
