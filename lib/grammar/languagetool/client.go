package languagetool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf16"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/grammar"
)

const (
	PublicApiUrl = "https://api.languagetool.org"
	LocalUrl     = "http://localhost:8081"
)

type Config struct {
	Url      string
	Language string
}

func NewClient(conf Config, httpClient lib.HttpClient) grammar.Checker {
	u := conf.Url
	if u == "" {
		u = PublicApiUrl
	}
	return &client{
		Url:        strings.TrimSuffix(u, "/"),
		Language:   conf.Language,
		httpClient: httpClient,
	}
}

type client struct {
	Url        string
	Language   string
	httpClient lib.HttpClient
}

type Response struct {
	Matches []Match `json:"matches"`
}

type Match struct {
	Message      string `json:"message"`
	ShortMessage string `json:"shortMessage"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Rule struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	} `json:"rule"`
}

func (c *client) Check(ctx context.Context, text string) ([]grammar.Match, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.Language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Url+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("languagetool: %w", err)
	}

	b, err := lib.ReadResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("languagetool: %w", err)
	}

	var ltResponse Response
	if err := json.Unmarshal(b, &ltResponse); err != nil {
		return nil, fmt.Errorf("languagetool: decode response: %w", err)
	}

	toRunes := runeIndex(text)
	matches := make([]grammar.Match, len(ltResponse.Matches))
	for i, m := range ltResponse.Matches {
		replacements := make([]string, len(m.Replacements))
		for j, r := range m.Replacements {
			replacements[j] = r.Value
		}
		start, end := toRunes(m.Offset), toRunes(m.Offset+m.Length)
		if start < 0 || end < 0 {
			// dropped by grammar.Correct
			start, end = -1, -1
		}
		matches[i] = grammar.Match{
			Message:      m.Message,
			RuleID:       m.Rule.ID,
			Offset:       start,
			Length:       end - start,
			Replacements: replacements,
		}
	}

	return matches, nil
}

// runeIndex maps the UTF-16 code unit offsets LanguageTool reports to rune offsets
// of text. Offsets outside of text map to -1.
func runeIndex(text string) func(int) int {
	units := make([]int, 0, len(text)+1)
	n := 0
	for _, r := range text {
		for k := len(utf16.Encode([]rune{r})); k > 0; k-- {
			units = append(units, n)
		}
		n++
	}
	units = append(units, n)

	return func(offset int) int {
		if offset < 0 || offset >= len(units) {
			return -1
		}
		return units[offset]
	}
}
