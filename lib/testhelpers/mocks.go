package testhelpers

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/grammar"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"
)

type MockHttpClient struct {
	mock.Mock
}

func (_m *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	ret := _m.Called(req)

	var r0 *http.Response
	if rf, ok := ret.Get(0).(func(*http.Request) *http.Response); ok {
		r0 = rf(req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*http.Response)
	}

	return r0, ret.Error(1)
}

type MockParser struct {
	mock.Mock
}

func (_m *MockParser) Parse(ctx context.Context, text string) (*nlp.Doc, error) {
	ret := _m.Called(ctx, text)

	var r0 *nlp.Doc
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*nlp.Doc)
	}

	return r0, ret.Error(1)
}

type MockChecker struct {
	mock.Mock
}

func (_m *MockChecker) Check(ctx context.Context, text string) ([]grammar.Match, error) {
	ret := _m.Called(ctx, text)

	var r0 []grammar.Match
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]grammar.Match)
	}

	return r0, ret.Error(1)
}

type MockAnalyzer struct {
	mock.Mock
}

func (_m *MockAnalyzer) Analyze(ctx context.Context, text string) (sentiment.Score, error) {
	ret := _m.Called(ctx, text)
	return ret.Get(0).(sentiment.Score), ret.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (_m *MockRenderer) Render(doc *nlp.Doc) (string, error) {
	ret := _m.Called(doc)
	return ret.String(0), ret.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (_m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *MockCache) Set(ctx context.Context, key string, value []byte) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

func (_m *MockCache) Ready() bool {
	ret := _m.Called()
	return ret.Bool(0)
}
