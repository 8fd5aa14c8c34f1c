package text

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

var disallowedNodes = map[string]struct{}{
	"area":     {},
	"audio":    {},
	"head":     {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"script":   {},
	"source":   {},
	"style":    {},
	"input":    {},
	"textarea": {},
	"title":    {},
	"video":    {},
}

var nonBreakingNodes = map[string]struct{}{
	"span":   {},
	"sub":    {},
	"sup":    {},
	"b":      {},
	"del":    {},
	"i":      {},
	"em":     {},
	"ins":    {},
	"mark":   {},
	"q":      {},
	"s":      {},
	"strike": {},
	"strong": {},
	"u":      {},
	"big":    {},
	"small":  {},
	"a":      {},
}

// HTMLToText returns the visible text of an html document. Text inside
// disallowed nodes (scripts, styles, media...) is dropped and block level
// elements are separated by a space. Runs of whitespace are collapsed.
func HTMLToText(r io.Reader) (string, error) {
	htmlTokenizer := html.NewTokenizer(r)
	var builder strings.Builder
	disallowedDepth := 0

Loop:
	for {
		htmlToken := htmlTokenizer.Next()
		switch htmlToken {
		case html.ErrorToken:
			break Loop
		case html.TextToken:
			if disallowedDepth == 0 {
				builder.Write(htmlTokenizer.Text())
			}
		case html.StartTagToken:
			tn, _ := htmlTokenizer.TagName()
			if _, disallowed := disallowedNodes[string(tn)]; disallowed {
				disallowedDepth++
			} else if _, inline := nonBreakingNodes[string(tn)]; !inline {
				builder.WriteByte(' ')
			}
		case html.EndTagToken:
			tn, _ := htmlTokenizer.TagName()
			if _, disallowed := disallowedNodes[string(tn)]; disallowed {
				if disallowedDepth > 0 {
					disallowedDepth--
				}
			} else if _, inline := nonBreakingNodes[string(tn)]; !inline {
				builder.WriteByte(' ')
			}
		case html.SelfClosingTagToken:
			tn, _ := htmlTokenizer.TagName()
			if _, inline := nonBreakingNodes[string(tn)]; !inline {
				builder.WriteByte(' ')
			}
		}
	}
	if err := htmlTokenizer.Err(); err != io.EOF {
		return "", err
	}

	return strings.Join(strings.Fields(builder.String()), " "), nil
}
