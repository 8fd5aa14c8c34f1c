package text

import (
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

const NonAlphaNumericChar = segment.None

// Token is a word found in a text. Offset is the position of its first
// character (rune, not byte) in the text.
type Token struct {
	Text   string
	Offset int
}

// Tokenize splits text into words and calls onToken for each word found, in order.
// Whitespace and punctuation segments are skipped; numbers, letters, kana and
// ideographs are words. Elided forms such as "l'amore" stay a single word, see
// NormalizeString for splitting them.
func Tokenize(text string, onToken func(Token) error) error {
	segmenter := segment.NewWordSegmenterDirect([]byte(text))

	position := 0
	for segmenter.Segment() {
		segmentBytes := segmenter.Bytes()
		if segmenter.Type() != NonAlphaNumericChar {
			if err := onToken(Token{Text: string(segmentBytes), Offset: position}); err != nil {
				return err
			}
		}
		// get length of string (take account of accented chars) then update position
		position += utf8.RuneCount(segmentBytes)
	}

	return segmenter.Err()
}

// Words returns every word of text.
func Words(text string) ([]Token, error) {
	var tokens []Token
	err := Tokenize(text, func(token Token) error {
		tokens = append(tokens, token)
		return nil
	})
	return tokens, err
}
