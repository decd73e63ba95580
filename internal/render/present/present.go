// Package present turns entry field values into display labels and text.
package present

import (
	"fmt"
	"strings"

	"github.com/Xunop/bookserver/internal/model"
)

type labels struct {
	singular string
	plural   string
}

var displayTitles = map[model.FieldKey]labels{
	model.FieldAuthors:           {"Author", "Authors"},
	model.FieldContributors:      {"Contributor", "Contributors"},
	model.FieldDate:              {"Published", "Published"},
	model.FieldDownloadsPerMonth: {"Recent downloads", "Recent downloads"},
	model.FieldFormats:           {"Format", "Formats"},
	model.FieldLanguages:         {"Language", "Languages"},
	model.FieldProvider:          {"Provider", "Provider"},
	model.FieldPublisher:         {"Publisher", "Publisher"},
	model.FieldSummary:           {"Summary", "Summary"},
	model.FieldTitle:             {"Title", "Title"},
}

// UnknownFieldError is returned for a key that has no display label.
type UnknownFieldError struct {
	Key model.FieldKey
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("no display label for entry field %q", string(e.Key))
}

// Format returns the label and display text for a field value. Lists with
// more than one item use the plural label and are joined with ", ". A
// scalar publication date is cut to its year.
func Format(key model.FieldKey, v model.Value) (string, string, error) {
	titles, ok := displayTitles[key]
	if !ok {
		return "", "", &UnknownFieldError{Key: key}
	}

	if v.IsList {
		if len(v.List) > 1 {
			return titles.plural, strings.Join(v.List, ", "), nil
		}
		if len(v.List) == 1 {
			return titles.singular, v.List[0], nil
		}
		return titles.singular, "", nil
	}

	display := v.Text
	if key == model.FieldDate && len(display) > 4 {
		display = display[:4]
	}
	return titles.singular, display, nil
}
