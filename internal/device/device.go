// Package device rewrites acquisition links for specific reading devices.
package device

import (
	"strings"

	"github.com/Xunop/bookserver/internal/model"
)

// Profile adapts links to what a reading client can open.
type Profile interface {
	Name() string
	FormatLink(l model.Link) model.Link
}

const KindleName = "Kindle"

// Kindle cannot open epub files, so epub links are pointed at the mobi
// file published next to them.
type Kindle struct{}

func (Kindle) Name() string {
	return KindleName
}

func (Kindle) FormatLink(l model.Link) model.Link {
	if l.Type != model.TypeEPUB && l.Type != model.TypeEPUBLegacy {
		return l
	}
	if !strings.HasSuffix(l.URL, ".epub") {
		return l
	}
	l.URL = strings.TrimSuffix(l.URL, ".epub") + ".mobi"
	l.Type = model.TypeMOBI
	return l
}

// Lookup returns the profile called name, ignoring case.
func Lookup(name string) (Profile, bool) {
	switch strings.ToLower(name) {
	case strings.ToLower(KindleName):
		return Kindle{}, true
	}
	return nil, false
}
