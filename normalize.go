package archtext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuleSetVersion identifies the default cleaning chain. Bump it whenever a
// rule or the rule order changes so stored results can be told apart.
const RuleSetVersion = "2"

// Rule is one rewrite step of a Normalizer.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Scope controls how much text a boilerplate anchor removes.
type Scope int

// Boilerplate removal scopes.
const (
	// ScopeLine removes the anchor's line.
	ScopeLine Scope = iota
	// ScopeBlock removes the anchor's line and every following line up to
	// and including the next blank line.
	ScopeBlock
)

// Anchor is a literal phrase that marks boilerplate when it starts a line.
type Anchor struct {
	Phrase string
	Scope  Scope
}

// BoilerplateAnchors lists the chrome found on the archive pages: sharing
// widgets, post metadata, sidebar widgets, and social links.
var BoilerplateAnchors = []Anchor{
	{Phrase: "Share this:", Scope: ScopeBlock},
	{Phrase: "Like this:", Scope: ScopeBlock},
	{Phrase: "Compartir esto:", Scope: ScopeBlock},
	{Phrase: "Me gusta esto:", Scope: ScopeBlock},
	{Phrase: "Posted in", Scope: ScopeBlock},
	{Phrase: "Entradas anteriores", Scope: ScopeBlock},
	{Phrase: "Buscar:", Scope: ScopeBlock},
	{Phrase: "Relevante", Scope: ScopeBlock},
	{Phrase: "Comentarios recientes", Scope: ScopeBlock},
	{Phrase: "Archivos", Scope: ScopeBlock},
	{Phrase: "Meta", Scope: ScopeBlock},
	{Phrase: "Acerca de nosotros", Scope: ScopeBlock},
	{Phrase: "Tagged", Scope: ScopeLine},
	{Phrase: "Posted on", Scope: ScopeLine},
	{Phrase: "Posted by", Scope: ScopeLine},
	{Phrase: "Facebook", Scope: ScopeLine},
	{Phrase: "YouTube", Scope: ScopeLine},
	{Phrase: "Twitter", Scope: ScopeLine},
	{Phrase: "SoundCloud", Scope: ScopeLine},
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#8217;", "'",
	"&#8220;", `"`,
	"&#8221;", `"`,
	"&#8230;", "...",
)

var (
	lineEndingsRe = regexp.MustCompile(`\r\n?`)
	iframeRe      = regexp.MustCompile(`(?m)^[^\n]*\biframe\b[^\n]*\bsrc=[^\n]*(?:\n|$)`)
	emptyParaRe   = regexp.MustCompile(`(?i)<p(?:\s[^>]*)?>\s*(?:<span\s+lang="[^"]*"\s*>\s*</span>\s*)?</p>`)
	spanLangRe    = regexp.MustCompile(`(?is)<span\s+lang="[^"]*"\s*>(.*?)</span>`)
	boldRe        = regexp.MustCompile(`(?i)</?(?:b|strong)>`)
	paraOpenRe    = regexp.MustCompile(`(?i)<p(?:\s[^>]*)?>`)
	paraCloseRe   = regexp.MustCompile(`(?i)</p>`)
	spacesRe      = regexp.MustCompile(`[\t\v\f\r\p{Zs}]+`)
	blankLinesRe  = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)
	lineEdgesRe   = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
)

// DefaultRules returns the cleaning chain in application order. Entities are
// decoded before boilerplate is matched, and boilerplate is removed while the
// text still has its original line structure.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "line-endings", Apply: func(s string) string {
			return lineEndingsRe.ReplaceAllString(s, "\n")
		}},
		{Name: "entities", Apply: decodeEntities},
		{Name: "boilerplate", Apply: RemoveBoilerplate(BoilerplateAnchors)},
		{Name: "iframes", Apply: func(s string) string {
			return iframeRe.ReplaceAllString(s, "")
		}},
		{Name: "markup", Apply: stripMarkup},
		{Name: "whitespace", Apply: func(s string) string {
			return spacesRe.ReplaceAllString(s, " ")
		}},
		{Name: "blank-lines", Apply: func(s string) string {
			return blankLinesRe.ReplaceAllString(s, "\n\n")
		}},
		{Name: "trim", Apply: func(s string) string {
			return strings.TrimSpace(lineEdgesRe.ReplaceAllString(s, ""))
		}},
	}
}

// decodeEntities decodes the entity table until nothing is left to decode,
// so "&amp;amp;nbsp;" ends up as a space. Each replacement shortens the text,
// which bounds the loop.
func decodeEntities(s string) string {
	for {
		next := entityReplacer.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}

// stripMarkup removes the tag residue that survives text extraction.
func stripMarkup(s string) string {
	s = emptyParaRe.ReplaceAllString(s, "")
	s = spanLangRe.ReplaceAllString(s, "$1")
	s = boldRe.ReplaceAllString(s, "")
	s = paraOpenRe.ReplaceAllString(s, "\n")
	return paraCloseRe.ReplaceAllString(s, "")
}

// RemoveBoilerplate returns a rewrite that cuts each line at the first
// anchor it contains. Text before the anchor is kept. A line anchor removes
// the rest of its line; a block anchor also removes the following lines up
// to and including the next blank line. An anchor that starts or ends with
// a letter or digit only matches at a word boundary.
func RemoveBoilerplate(anchors []Anchor) func(string) string {
	return func(s string) string {
		lines := strings.Split(s, "\n")
		out := make([]string, 0, len(lines))
		for i := 0; i < len(lines); i++ {
			a, pos, ok := findAnchor(anchors, lines[i])
			if !ok {
				out = append(out, lines[i])
				continue
			}
			kept := strings.TrimRightFunc(lines[i][:pos], unicode.IsSpace)
			if kept != "" {
				out = append(out, kept)
			}
			if a.Scope == ScopeLine {
				continue
			}
			for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				i++
			}
			// The blank line closing the block goes with it unless it now
			// separates the kept text from the next paragraph.
			if i+1 < len(lines) && kept == "" {
				i++
			}
		}
		return strings.Join(out, "\n")
	}
}

// findAnchor returns the anchor occurring first in line and its byte offset.
func findAnchor(anchors []Anchor, line string) (Anchor, int, bool) {
	best, bestPos := Anchor{}, -1
	for _, a := range anchors {
		pos := indexPhrase(line, a.Phrase)
		if pos >= 0 && (bestPos < 0 || pos < bestPos) {
			best, bestPos = a, pos
		}
	}
	return best, bestPos, bestPos >= 0
}

// indexPhrase returns the offset of the first occurrence of phrase in line
// that sits on word boundaries, or -1.
func indexPhrase(line, phrase string) int {
	if phrase == "" {
		return -1
	}
	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)
	for off := 0; off < len(line); {
		i := strings.Index(line[off:], phrase)
		if i < 0 {
			return -1
		}
		pos := off + i
		before, _ := utf8.DecodeLastRuneInString(line[:pos])
		after, _ := utf8.DecodeRuneInString(line[pos+len(phrase):])
		if !(pos > 0 && isWordRune(first) && isWordRune(before)) &&
			!(pos+len(phrase) < len(line) && isWordRune(last) && isWordRune(after)) {
			return pos
		}
		_, size := utf8.DecodeRuneInString(line[pos:])
		off = pos + size
	}
	return -1
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// maxPasses bounds Normalize for custom rule sets, which may grow their
// input. The default chain only ever shortens text and runs unbounded.
const maxPasses = 16

// Normalizer applies an ordered chain of rewrite rules to extracted text.
// The zero value uses DefaultRules.
type Normalizer struct {
	Rules []Rule

	defaults bool
}

// NewNormalizer returns a Normalizer using the default rule chain.
func NewNormalizer() *Normalizer {
	return &Normalizer{Rules: DefaultRules(), defaults: true}
}

// Normalize applies the rule chain until the text stops changing, so that
// normalizing already normalized text is a no-op. Empty input returns "".
func (n *Normalizer) Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	rules := n.Rules
	unbounded := n.defaults
	if rules == nil {
		rules = DefaultRules()
		unbounded = true
	}
	for pass := 0; unbounded || pass < maxPasses; pass++ {
		next := text
		for _, r := range rules {
			next = r.Apply(next)
		}
		if next == text {
			break
		}
		text = next
	}
	return text
}

var defaultNormalizer = NewNormalizer()

// Normalize cleans text with the default rule chain.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// CountWords returns the number of whitespace-delimited tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
