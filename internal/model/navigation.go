package model

import "strconv"

// Navigation holds the links to the neighbouring pages of a paged catalog.
// Either side is empty on the first or last page.
type Navigation struct {
	PrevLink  string `yaml:"prev,omitempty"`
	PrevTitle string `yaml:"prevTitle,omitempty"`
	NextLink  string `yaml:"next,omitempty"`
	NextTitle string `yaml:"nextTitle,omitempty"`
}

// NewNavigation computes the neighbours of page start for a result set of
// found items shown rows at a time. Page URLs are base followed by the page
// number.
func NewNavigation(start, rows, found int, base string) *Navigation {
	n := &Navigation{}
	if start > 0 {
		n.PrevLink = base + strconv.Itoa(start-1)
		n.PrevTitle = "Prev results"
	}
	if rows > 0 && (start+1)*rows < found {
		n.NextLink = base + strconv.Itoa(start+1)
		n.NextTitle = "Next results"
	}
	return n
}
