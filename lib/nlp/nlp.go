package nlp

import (
	"context"
	"fmt"
)

// Doc is a parsed sentence as returned by a dependency parser.
type Doc struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
	Ents   []Span  `json:"ents"`
}

// Token is a single parsed word. Head is the index of the governing token;
// the root of a sentence is its own head.
type Token struct {
	Index  int               `json:"i"`
	Text   string            `json:"text"`
	Lemma  string            `json:"lemma"`
	Pos    string            `json:"pos"`
	Tag    string            `json:"tag"`
	Dep    string            `json:"dep"`
	Head   int               `json:"head"`
	Idx    int               `json:"idx"`
	IsStop bool              `json:"is_stop"`
	Morph  map[string]string `json:"morph,omitempty"`
}

// Span is a named entity. Start and End are character offsets into Doc.Text.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type Parser interface {
	Parse(ctx context.Context, text string) (*Doc, error)
}

// IsRoot reports whether t governs itself.
func (t Token) IsRoot() bool {
	return t.Head == t.Index || t.Dep == "ROOT"
}

// Validate checks that every head refers to a token of the document and sets
// each token's Index to its position. Parsers call it before returning a Doc.
func (d *Doc) Validate() error {
	for i := range d.Tokens {
		d.Tokens[i].Index = i
		if head := d.Tokens[i].Head; head < 0 || head >= len(d.Tokens) {
			return fmt.Errorf("token %d (%q) has head %d outside of document", i, d.Tokens[i].Text, head)
		}
	}
	return nil
}
