package mock

import "github.com/Quintaneishon/archtext"

var _ archtext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of archtext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*archtext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*archtext.ExtractResult, error) {
	return e.ExtractFn(html)
}
