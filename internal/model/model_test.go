package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestEntryField(t *testing.T) {
	downloads := 7
	e := &Entry{
		Title:             "test item",
		Updated:           "2009-01-01T00:00:00Z",
		Authors:           []string{"Jane Doe"},
		DownloadsPerMonth: &downloads,
	}

	tests := []struct {
		key     FieldKey
		present bool
		isList  bool
		text    string
	}{
		{FieldTitle, true, false, "test item"},
		{FieldAuthors, true, true, ""},
		{FieldPublisher, false, false, ""},
		{FieldLanguages, false, true, ""},
		{FieldDownloadsPerMonth, true, false, "7"},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			v, err := e.Field(tt.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Present() != tt.present {
				t.Errorf("Present() = %v, want %v", v.Present(), tt.present)
			}
			if v.IsList != tt.isList {
				t.Errorf("IsList = %v, want %v", v.IsList, tt.isList)
			}
			if !tt.isList && v.Text != tt.text {
				t.Errorf("Text = %q, want %q", v.Text, tt.text)
			}
		})
	}
}

func TestEntryFieldZeroDownloadsIsAbsent(t *testing.T) {
	zero := 0
	e := &Entry{DownloadsPerMonth: &zero}
	v, err := e.Field(FieldDownloadsPerMonth)
	if err != nil {
		t.Fatal(err)
	}
	if v.Present() {
		t.Errorf("zero downloads should be absent, got %+v", v)
	}
}

func TestEntryFieldUnknownKey(t *testing.T) {
	e := &Entry{}
	_, err := e.Field(FieldKey("isbn"))
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestCopyLinksDoesNotAlias(t *testing.T) {
	e := &Entry{Links: []Link{{URL: "a"}, {URL: "b"}}}
	links := e.CopyLinks()
	links = append(links[:0], links[1:]...)
	if len(e.Links) != 2 || e.Links[0].URL != "a" {
		t.Errorf("entry links changed: %+v", e.Links)
	}
	if len(links) != 1 || links[0].URL != "b" {
		t.Errorf("unexpected copy: %+v", links)
	}
}

func TestNewNavigation(t *testing.T) {
	nav := NewNavigation(5, 10, 100, "/alpha/a/")
	if nav.PrevLink != "/alpha/a/4" || nav.PrevTitle != "Prev results" {
		t.Errorf("unexpected prev: %+v", nav)
	}
	if nav.NextLink != "/alpha/a/6" || nav.NextTitle != "Next results" {
		t.Errorf("unexpected next: %+v", nav)
	}

	first := NewNavigation(0, 1, 2, "/alpha/a/")
	if first.PrevLink != "" {
		t.Errorf("first page should have no prev link, got %q", first.PrevLink)
	}
	if first.NextLink != "/alpha/a/1" {
		t.Errorf("unexpected next link %q", first.NextLink)
	}

	last := NewNavigation(1, 1, 2, "/alpha/a/")
	if last.NextLink != "" {
		t.Errorf("last page should have no next link, got %q", last.NextLink)
	}
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/catalog.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Internet Archive OPDS" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if c.DateString() != "2010-02-01T12:00:00Z" {
		t.Errorf("unexpected date %q", c.DateString())
	}
	if len(c.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c.Entries))
	}
	if c.Entries[0].Title != "test item" || c.Entries[1].Title != "Providers" {
		t.Errorf("entry order not preserved")
	}
	if *c.Entries[0].DownloadsPerMonth != 12 {
		t.Errorf("unexpected downloads %d", *c.Entries[0].DownloadsPerMonth)
	}
	if c.OpenSearch == nil || c.OpenSearch.DescriptionURL == "" {
		t.Errorf("opensearch reference missing")
	}
	if c.Navigation == nil || c.Navigation.NextLink != "/alpha/a/1" {
		t.Errorf("navigation missing: %+v", c.Navigation)
	}
}

func TestLoadAssignsURN(t *testing.T) {
	c, err := Load(strings.NewReader("title: t\nentries: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(c.URN, "urn:uuid:") {
		t.Errorf("expected a generated urn, got %q", c.URN)
	}
	if c.Created.IsZero() {
		t.Errorf("expected Created to be set")
	}
}

func TestLoadRejectsIncompleteEntries(t *testing.T) {
	docs := []string{
		"title: t\nentries:\n  - updated: x\n",
		"title: t\nentries:\n  - title: a\n",
		"title: t\nentries:\n  - title: a\n    updated: x\n    links:\n      - type: text/html\n",
		"title: t\nbogus: 1\n",
	}
	for _, doc := range docs {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}
