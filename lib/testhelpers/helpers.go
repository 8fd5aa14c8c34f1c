package testhelpers

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
)

// Tok returns a parsed token with its lemma set to its text.
func Tok(text, pos, dep string, head int) nlp.Token {
	return nlp.Token{
		Text:  text,
		Lemma: text,
		Pos:   pos,
		Tag:   pos,
		Dep:   dep,
		Head:  head,
	}
}

// Doc builds a validated document from toks, filling in indexes and character offsets.
func Doc(toks ...nlp.Token) *nlp.Doc {
	doc := &nlp.Doc{Tokens: toks, Ents: []nlp.Span{}}
	var text bytes.Buffer
	for i := range doc.Tokens {
		if i > 0 {
			text.WriteByte(' ')
		}
		doc.Tokens[i].Index = i
		doc.Tokens[i].Idx = text.Len()
		text.WriteString(doc.Tokens[i].Text)
	}
	doc.Text = text.String()
	return doc
}

// SentenceDoc is "Marco mangia la mela" with a subject, a root and a direct object.
func SentenceDoc() *nlp.Doc {
	doc := Doc(
		Tok("Marco", "PROPN", "nsubj", 1),
		Tok("mangia", "VERB", "ROOT", 1),
		Tok("la", "DET", "det", 3),
		Tok("mela", "NOUN", "obj", 1),
	)
	doc.Tokens[1].Lemma = "mangiare"
	doc.Ents = []nlp.Span{{Text: "Marco", Label: "PER", Start: 0, End: 5}}
	return doc
}

// JSONResponse returns a response to req with v encoded as its body.
func JSONResponse(req *http.Request, status int, v interface{}) *http.Response {
	b, _ := json.Marshal(v)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       ioutil.NopCloser(bytes.NewReader(b)),
		Request:    req,
	}
}
