package http_sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"
)

// NewAnalyzer returns an analyzer backed by a remote sentiment model at url.
func NewAnalyzer(url, language string, httpClient lib.HttpClient) sentiment.Analyzer {
	return &analyzer{
		Url:        url,
		Language:   language,
		httpClient: httpClient,
	}
}

type analyzer struct {
	Url        string
	Language   string
	httpClient lib.HttpClient
}

type request struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type Response struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

func (a *analyzer) Analyze(ctx context.Context, text string) (sentiment.Score, error) {
	body, err := json.Marshal(request{Text: text, Language: a.Language})
	if err != nil {
		return sentiment.Score{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Url, bytes.NewReader(body))
	if err != nil {
		return sentiment.Score{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return sentiment.Score{}, fmt.Errorf("sentiment: %w", err)
	}

	b, err := lib.ReadResponse(resp)
	if err != nil {
		return sentiment.Score{}, fmt.Errorf("sentiment: %w", err)
	}

	var sentimentResponse Response
	if err := json.Unmarshal(b, &sentimentResponse); err != nil {
		return sentiment.Score{}, fmt.Errorf("sentiment: decode response: %w", err)
	}

	return sentiment.Score{
		Polarity:     sentimentResponse.Polarity,
		Subjectivity: sentimentResponse.Subjectivity,
	}.Clamp(), nil
}
