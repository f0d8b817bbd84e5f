package mock

import "github.com/Quintaneishon/archtext"

var _ archtext.Converter = (*Converter)(nil)

// Converter is a mock implementation of archtext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
