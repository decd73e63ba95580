package model

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open catalog %s", path)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load catalog %s", path)
	}
	return c, nil
}

// Load decodes a YAML catalog and checks the mandatory entry fields.
func Load(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	if c.URN == "" {
		c.URN = "urn:uuid:" + uuid.New().String()
	}
	if c.Created.IsZero() {
		c.Created = time.Now().UTC()
	}

	for i, e := range c.Entries {
		if e == nil {
			return nil, errors.Errorf("entry %d is empty", i)
		}
		if e.Title == "" {
			return nil, errors.Errorf("entry %d has no title", i)
		}
		if e.Updated == "" {
			return nil, errors.Errorf("entry %d (%s) has no updated date", i, e.Title)
		}
		for j, l := range e.Links {
			if l.URL == "" {
				return nil, errors.Errorf("entry %d (%s) link %d has no url", i, e.Title, j)
			}
		}
	}
	return c, nil
}
