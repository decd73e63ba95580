package device

import (
	"testing"

	"github.com/Xunop/bookserver/internal/model"
)

func TestKindleFormatLink(t *testing.T) {
	tests := []struct {
		name string
		in   model.Link
		want model.Link
	}{
		{
			name: "epub becomes mobi",
			in:   model.Link{URL: "http://a.o/item.epub", Type: model.TypeEPUB, Rel: model.RelAcquisition},
			want: model.Link{URL: "http://a.o/item.mobi", Type: model.TypeMOBI, Rel: model.RelAcquisition},
		},
		{
			name: "legacy epub type",
			in:   model.Link{URL: "/blah.epub", Type: model.TypeEPUBLegacy},
			want: model.Link{URL: "/blah.mobi", Type: model.TypeMOBI},
		},
		{
			name: "pdf untouched",
			in:   model.Link{URL: "http://a.o/item.pdf", Type: model.TypePDF},
			want: model.Link{URL: "http://a.o/item.pdf", Type: model.TypePDF},
		},
		{
			name: "epub without extension untouched",
			in:   model.Link{URL: "http://a.o/download?id=1", Type: model.TypeEPUB},
			want: model.Link{URL: "http://a.o/download?id=1", Type: model.TypeEPUB},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Kindle{}.FormatLink(tt.in)
			if got.URL != tt.want.URL || got.Type != tt.want.Type || got.Rel != tt.want.Rel {
				t.Errorf("FormatLink() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("kindle")
	if !ok || p.Name() != "Kindle" {
		t.Errorf("expected the Kindle profile, got %v %v", p, ok)
	}
	if _, ok := Lookup("nook"); ok {
		t.Errorf("unexpected profile for nook")
	}
}
