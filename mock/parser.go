package mock

import "github.com/Quintaneishon/archtext"

var _ archtext.Parser = (*Parser)(nil)

// Parser is a mock implementation of archtext.Parser.
type Parser struct {
	ParseFn func(data []byte) (archtext.Document, error)
}

func (p *Parser) Parse(data []byte) (archtext.Document, error) {
	return p.ParseFn(data)
}
