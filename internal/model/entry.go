package model

import (
	"strconv"

	"github.com/pkg/errors"
)

// FieldKey names an entry field.
type FieldKey string

const (
	FieldURN               FieldKey = "urn"
	FieldIdentifier        FieldKey = "identifier"
	FieldTitle             FieldKey = "title"
	FieldUpdated           FieldKey = "updated"
	FieldDate              FieldKey = "date"
	FieldAuthors           FieldKey = "authors"
	FieldSubjects          FieldKey = "subjects"
	FieldPublisher         FieldKey = "publisher"
	FieldLanguages         FieldKey = "languages"
	FieldDescription       FieldKey = "description"
	FieldSummary           FieldKey = "summary"
	FieldContent           FieldKey = "content"
	FieldContributors      FieldKey = "contributors"
	FieldDownloadsPerMonth FieldKey = "downloadsPerMonth"
	FieldProvider          FieldKey = "provider"
	FieldRights            FieldKey = "rights"
	FieldFormats           FieldKey = "formats"
)

var ErrUnknownField = errors.New("unknown entry field")

// Value is the raw value of one entry field. A list field has IsList set
// and its items in List; a scalar field uses Text.
type Value struct {
	Text   string
	List   []string
	IsList bool
}

// Present reports whether the field carries a value.
func (v Value) Present() bool {
	if v.IsList {
		return len(v.List) > 0
	}
	return v.Text != ""
}

func scalar(s string) Value {
	return Value{Text: s}
}

func list(items []string) Value {
	return Value{List: items, IsList: true}
}

// Entry is one catalog item. Title and Updated are mandatory, every other
// field is optional and absent when empty.
type Entry struct {
	URN        string `yaml:"urn,omitempty"`
	Identifier string `yaml:"identifier,omitempty"`
	Title      string `yaml:"title"`
	Updated    string `yaml:"updated"`
	Date       string `yaml:"date,omitempty"`

	Authors      []string `yaml:"authors,omitempty"`
	Subjects     []string `yaml:"subjects,omitempty"`
	Publisher    string   `yaml:"publisher,omitempty"`
	Languages    []string `yaml:"languages,omitempty"`
	Description  []string `yaml:"description,omitempty"`
	Summary      string   `yaml:"summary,omitempty"`
	Content      string   `yaml:"content,omitempty"`
	Contributors []string `yaml:"contributors,omitempty"`
	Provider     string   `yaml:"provider,omitempty"`
	Rights       string   `yaml:"rights,omitempty"`
	Formats      []string `yaml:"formats,omitempty"`

	// DownloadsPerMonth is nil when unknown.
	DownloadsPerMonth *int `yaml:"downloadsPerMonth,omitempty"`

	Links []Link `yaml:"links,omitempty"`
}

// HasIdentifier reports whether the entry describes an identified
// publication rather than a navigation folder.
func (e *Entry) HasIdentifier() bool {
	return e.Identifier != ""
}

// Field returns the value stored under key. Keys outside the entry schema
// yield ErrUnknownField.
func (e *Entry) Field(key FieldKey) (Value, error) {
	switch key {
	case FieldURN:
		return scalar(e.URN), nil
	case FieldIdentifier:
		return scalar(e.Identifier), nil
	case FieldTitle:
		return scalar(e.Title), nil
	case FieldUpdated:
		return scalar(e.Updated), nil
	case FieldDate:
		return scalar(e.Date), nil
	case FieldAuthors:
		return list(e.Authors), nil
	case FieldSubjects:
		return list(e.Subjects), nil
	case FieldPublisher:
		return scalar(e.Publisher), nil
	case FieldLanguages:
		return list(e.Languages), nil
	case FieldDescription:
		return list(e.Description), nil
	case FieldSummary:
		return scalar(e.Summary), nil
	case FieldContent:
		return scalar(e.Content), nil
	case FieldContributors:
		return list(e.Contributors), nil
	case FieldProvider:
		return scalar(e.Provider), nil
	case FieldRights:
		return scalar(e.Rights), nil
	case FieldFormats:
		return list(e.Formats), nil
	case FieldDownloadsPerMonth:
		// A zero count is shown as absent, like any other empty value.
		if e.DownloadsPerMonth == nil || *e.DownloadsPerMonth == 0 {
			return Value{}, nil
		}
		return scalar(strconv.Itoa(*e.DownloadsPerMonth)), nil
	}
	return Value{}, errors.Wrapf(ErrUnknownField, "%q", key)
}

// CopyLinks returns a copy of the entry's links that callers may reorder
// or trim without touching the entry.
func (e *Entry) CopyLinks() []Link {
	links := make([]Link, len(e.Links))
	copy(links, e.Links)
	return links
}
