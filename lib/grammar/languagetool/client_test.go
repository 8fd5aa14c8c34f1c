package languagetool

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/grammar"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/testhelpers"
)

type ClientSuite struct {
	suite.Suite
	httpClient *testhelpers.MockHttpClient
	checker    grammar.Checker
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.httpClient = &testhelpers.MockHttpClient{}
	s.checker = NewClient(Config{Url: LocalUrl + "/", Language: "it"}, s.httpClient)
}

func (s *ClientSuite) TestCheck() {
	response := map[string]interface{}{
		"matches": []interface{}{
			map[string]interface{}{
				"message":      "Manca l'ausiliare",
				"offset":       3,
				"length":       6,
				"replacements": []interface{}{map[string]string{"value": "sono andato"}, map[string]string{"value": "ero andato"}},
				"rule":         map[string]string{"id": "IT_AUX", "description": "ausiliare"},
			},
		},
	}
	s.httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := req.GetBody()
		b, _ := ioutil.ReadAll(body)
		form, _ := url.ParseQuery(string(b))
		return req.Method == http.MethodPost &&
			req.URL.String() == "http://localhost:8081/v2/check" &&
			req.Header.Get("Content-Type") == "application/x-www-form-urlencoded" &&
			form.Get("text") == "Io andato" &&
			form.Get("language") == "it"
	})).Return(func(req *http.Request) *http.Response {
		return testhelpers.JSONResponse(req, http.StatusOK, response)
	}, nil).Once()

	matches, err := s.checker.Check(context.Background(), "Io andato")
	s.Require().NoError(err)
	s.Equal([]grammar.Match{{
		Message:      "Manca l'ausiliare",
		RuleID:       "IT_AUX",
		Offset:       3,
		Length:       6,
		Replacements: []string{"sono andato", "ero andato"},
	}}, matches)
	s.Equal("Io sono andato", grammar.Correct("Io andato", matches))
	s.httpClient.AssertExpectations(s.T())
}

func (s *ClientSuite) TestCheckConvertsUTF16Offsets() {
	text := "😀 Questo e sbagliato"
	response := map[string]interface{}{
		"matches": []interface{}{
			map[string]interface{}{
				"message":      "Verbo essere",
				"offset":       10,
				"length":       1,
				"replacements": []interface{}{map[string]string{"value": "è"}},
				"rule":         map[string]string{"id": "IT_E_ACCENT"},
			},
			map[string]interface{}{
				"message":      "fuori dal testo",
				"offset":       40,
				"length":       2,
				"replacements": []interface{}{map[string]string{"value": "x"}},
				"rule":         map[string]string{"id": "OUT_OF_RANGE"},
			},
		},
	}
	s.httpClient.On("Do", mock.Anything).Return(func(req *http.Request) *http.Response {
		return testhelpers.JSONResponse(req, http.StatusOK, response)
	}, nil).Once()

	matches, err := s.checker.Check(context.Background(), text)
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(9, matches[0].Offset)
	s.Equal(1, matches[0].Length)
	s.Equal(-1, matches[1].Offset)
	s.Equal("😀 Questo è sbagliato", grammar.Correct(text, matches))
}

func (s *ClientSuite) TestRuneIndex() {
	// 😀 is a surrogate pair in UTF-16
	toRunes := runeIndex("a😀b")
	s.Equal(0, toRunes(0))
	s.Equal(1, toRunes(1))
	s.Equal(1, toRunes(2))
	s.Equal(2, toRunes(3))
	s.Equal(3, toRunes(4))
	s.Equal(-1, toRunes(5))
	s.Equal(-1, toRunes(-1))
}

func (s *ClientSuite) TestCheckNoMatches() {
	s.httpClient.On("Do", mock.Anything).Return(func(req *http.Request) *http.Response {
		return testhelpers.JSONResponse(req, http.StatusOK, map[string]interface{}{"matches": []interface{}{}})
	}, nil).Once()

	matches, err := s.checker.Check(context.Background(), "Io sono andato")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *ClientSuite) TestCheckErrors() {
	s.httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	_, err := s.checker.Check(context.Background(), "Io andato")
	s.EqualError(err, "languagetool: connection refused")

	s.httpClient.On("Do", mock.Anything).Return(func(req *http.Request) *http.Response {
		return testhelpers.JSONResponse(req, http.StatusTooManyRequests, "slow down")
	}, nil).Once()
	_, err = s.checker.Check(context.Background(), "Io andato")
	var statusErr lib.HttpStatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusTooManyRequests, statusErr.StatusCode)
}

func (s *ClientSuite) TestDefaultsToPublicApi() {
	c := NewClient(Config{Language: "it"}, s.httpClient).(*client)
	s.Equal(PublicApiUrl, c.Url)
}
