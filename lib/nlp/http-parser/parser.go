package http_parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
)

// NewParser returns a parser which posts text to a spaCy-style REST service at url.
// model is forwarded with every request so one service can host several pipelines.
func NewParser(url, model string, httpClient lib.HttpClient) nlp.Parser {
	return &parser{
		Url:        strings.TrimSuffix(url, "/"),
		Model:      model,
		httpClient: httpClient,
	}
}

type parser struct {
	Url        string
	Model      string
	httpClient lib.HttpClient
}

type parseRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

func (p *parser) Parse(ctx context.Context, text string) (*nlp.Doc, error) {
	body, err := json.Marshal(parseRequest{Text: text, Model: p.Model})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Url+"/parse", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	b, err := lib.ReadResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	var doc nlp.Doc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parser: decode response: %w", err)
	}
	if doc.Text == "" {
		doc.Text = text
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &doc, nil
}
