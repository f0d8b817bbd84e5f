// Package yaml loads archive site descriptions from YAML files, so other
// WordPress-style archives can be decomposed without code changes.
//
// A site file looks like:
//
//	url_template: https://unamglobal.unam.mx/%04d/%02d/
//	layout:
//	  record: article
//	  title: h2.entry-title
//	  author: span.author
//	  date: time.entry-date
//	  categories: span.cat-links
//	  content: div.entry-content
//
// Omitted keys keep their defaults. An empty selector disables an optional
// field.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Quintaneishon/archtext"
	"gopkg.in/yaml.v3"
)

// Site describes where an archive lives and how its pages are laid out.
type Site struct {
	URLTemplate string
	Layout      archtext.Layout
}

// DefaultSite returns the UNAM Global archive description.
func DefaultSite() *Site {
	return &Site{
		URLTemplate: archtext.DefaultURLTemplate,
		Layout:      archtext.DefaultLayout(),
	}
}

type siteFile struct {
	URLTemplate *string    `yaml:"url_template,omitempty"`
	Layout      layoutFile `yaml:"layout,omitempty"`
}

type layoutFile struct {
	Record     *string `yaml:"record,omitempty"`
	Title      *string `yaml:"title,omitempty"`
	Author     *string `yaml:"author,omitempty"`
	Date       *string `yaml:"date,omitempty"`
	Categories *string `yaml:"categories,omitempty"`
	Content    *string `yaml:"content,omitempty"`
}

// LoadSite reads a site description from a YAML file.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	site, err := ParseSite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// ParseSite decodes a site description over DefaultSite. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func ParseSite(data []byte) (*Site, error) {
	var f siteFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, archtext.Errorf(archtext.EINVALID, "parse yaml: %v", err)
	}

	site := DefaultSite()
	set(&site.URLTemplate, f.URLTemplate)
	set(&site.Layout.Record, f.Layout.Record)
	set(&site.Layout.Title, f.Layout.Title)
	set(&site.Layout.Author, f.Layout.Author)
	set(&site.Layout.Date, f.Layout.Date)
	set(&site.Layout.Categories, f.Layout.Categories)
	set(&site.Layout.Content, f.Layout.Content)

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// Validate returns an error if the template cannot format a period or the
// layout is incomplete.
func (s *Site) Validate() error {
	if s.URLTemplate == "" {
		return archtext.Errorf(archtext.EINVALID, "url_template required")
	}
	if u := (archtext.Period{Year: 2020, Month: 1}).SourceURL(s.URLTemplate); strings.Contains(u, "%!") {
		return archtext.Errorf(archtext.EINVALID, "url_template %q must format a year and a month", s.URLTemplate)
	}
	return s.Layout.Validate()
}

// MarshalSite encodes s so that ParseSite returns an equal Site.
func MarshalSite(s *Site) ([]byte, error) {
	f := siteFile{
		URLTemplate: &s.URLTemplate,
		Layout: layoutFile{
			Record:     &s.Layout.Record,
			Title:      &s.Layout.Title,
			Author:     &s.Layout.Author,
			Date:       &s.Layout.Date,
			Categories: &s.Layout.Categories,
			Content:    &s.Layout.Content,
		},
	}
	return yaml.Marshal(&f)
}
