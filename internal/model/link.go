package model

// Acquisition relations understood by the renderers.
const (
	RelAcquisition  = "http://opds-spec.org/acquisition"
	RelBuying       = "http://opds-spec.org/acquisition/buying"
	RelLending      = "http://opds-spec.org/acquisition/lending"
	RelSubscription = "http://opds-spec.org/acquisition/subscription"
	RelSample       = "http://opds-spec.org/acquisition/sample"
	// RelBuyNow is used by shopping-cart feeds that link to an HTML product page.
	RelBuyNow = "buynow"
)

// Media types.
const (
	TypeOPDS = "application/atom+xml"
	TypeHTML = "text/html"
	TypePDF  = "application/pdf"
	TypeEPUB = "application/epub+zip"
	// TypeEPUBLegacy is emitted by some older feeds instead of TypeEPUB.
	TypeEPUBLegacy = "application/epub"
	TypeMOBI       = "application/x-mobipocket-ebook"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// Link is a way to reach or acquire an entry. Rel and Type are independently
// optional.
type Link struct {
	URL   string `yaml:"url"`
	Type  string `yaml:"type,omitempty"`
	Rel   string `yaml:"rel,omitempty"`
	Title string `yaml:"title,omitempty"`

	Price        string `yaml:"price,omitempty"`
	CurrencyCode string `yaml:"currencycode,omitempty"`

	// Formats lists alternate formats the acquisition can be delivered in.
	Formats []string `yaml:"formats,omitempty"`

	Availability     string `yaml:"availability,omitempty"`
	UnavailableSince string `yaml:"date,omitempty"`
	Holds            int    `yaml:"holds,omitempty"`
	Copies           int    `yaml:"copies,omitempty"`
}

// IsEbook reports whether the link points at a downloadable ebook file.
func (l Link) IsEbook() bool {
	switch l.Type {
	case TypePDF, TypeEPUB, TypeMOBI:
		return true
	}
	return false
}
