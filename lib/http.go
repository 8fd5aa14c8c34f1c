package lib

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"
	"unicode/utf8"
)

const (
	// maxResponseBytes caps how much of an adapter response body is read.
	maxResponseBytes = 8 << 20
	maxErrorBody     = 200
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHttpClient returns a client for outbound adapter calls. A zero timeout means
// calls are only bounded by the request context.
func NewHttpClient(timeout time.Duration) HttpClient {
	return &http.Client{Timeout: timeout}
}

// HttpStatusError is returned by adapters when a remote service answers with a non-200 status.
type HttpStatusError struct {
	Url        string
	StatusCode int
	Body       string
}

func (e HttpStatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", e.Url, e.StatusCode, e.Body)
}

// ReadResponse reads the body of resp and closes it, returning an HttpStatusError
// if the status code is not 200.
func ReadResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body := truncate(string(b), maxErrorBody)
		url := ""
		if resp.Request != nil && resp.Request.URL != nil {
			url = resp.Request.URL.String()
		}
		return nil, HttpStatusError{Url: url, StatusCode: resp.StatusCode, Body: body}
	}

	return b, nil
}

// truncate cuts s to at most n bytes without splitting a character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
