package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var TokenDelimiters = map[rune]struct{}{
	'(':  {},
	')':  {},
	'{':  {},
	'}':  {},
	'[':  {},
	']':  {},
	'"':  {},
	'\'': {},
	'«':  {},
	'»':  {},
	':':  {},
	';':  {},
	',':  {},
	'.':  {},
	'?':  {},
	'!':  {},
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

func IsTokenDelimiter(r rune) bool {
	_, ok := TokenDelimiters[r]
	return ok
}

// NormalizeString removes enclosing punctuation, drops an elided prefix
// ("dell'acqua" becomes "acqua"), enforces NFKC and lower cases the token.
func NormalizeString(token string) string {
	token = apostrophes.Replace(token)
	token = strings.TrimFunc(token, IsTokenDelimiter)
	if i := strings.LastIndexByte(token, '\''); i >= 0 {
		token = token[i+1:]
	}

	// normalise the bytes to NFKC
	token = norm.NFKC.String(token)
	return strings.ToLower(token)
}
