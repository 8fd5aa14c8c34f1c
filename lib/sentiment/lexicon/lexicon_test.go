package lexicon

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"
)

const testLexicon = `
language: it
negations: [non]
intensifiers:
  molto: 1.5
words:
  Bello: {polarity: 0.8, subjectivity: 0.6}
  brutto: {polarity: -0.6, subjectivity: 0.4}
`

type LexiconSuite struct {
	suite.Suite
	lexicon *Lexicon
}

func TestLexiconSuite(t *testing.T) {
	suite.Run(t, new(LexiconSuite))
}

func (s *LexiconSuite) SetupTest() {
	var err error
	s.lexicon, err = Parse([]byte(testLexicon))
	s.Require().NoError(err)
}

func (s *LexiconSuite) TestAnalyze() {
	tests := []struct {
		name string
		text string
		want sentiment.Score
	}{
		{
			name: "unknown words are neutral",
			text: "il treno parte alle nove",
			want: sentiment.Score{},
		},
		{
			name: "single positive word, keys are normalised",
			text: "Il film è bello.",
			want: sentiment.Score{Polarity: 0.8, Subjectivity: 0.6},
		},
		{
			name: "scores are averaged",
			text: "bello ma brutto",
			want: sentiment.Score{Polarity: 0.1, Subjectivity: 0.5},
		},
		{
			name: "intensifier multiplies the score",
			text: "molto brutto",
			want: sentiment.Score{Polarity: -0.9, Subjectivity: 0.6},
		},
		{
			name: "negation flips and halves polarity",
			text: "non è bello, non bello",
			want: sentiment.Score{Polarity: 0.2, Subjectivity: 0.6},
		},
		{
			name: "negated intensified word",
			text: "non molto bello",
			want: sentiment.Score{Polarity: -0.6, Subjectivity: 0.9},
		},
		{
			name: "empty text",
			text: "",
			want: sentiment.Score{},
		},
	}
	for _, tt := range tests {
		s.T().Log(tt.name)
		got, err := s.lexicon.Analyze(context.Background(), tt.text)
		s.NoError(err)
		s.InDelta(tt.want.Polarity, got.Polarity, 1e-9, tt.name)
		s.InDelta(tt.want.Subjectivity, got.Subjectivity, 1e-9, tt.name)
	}
}

func (s *LexiconSuite) TestAnalyzeCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.lexicon.Analyze(ctx, "bello")
	s.ErrorIs(err, context.Canceled)
}

func (s *LexiconSuite) TestLoad() {
	path := filepath.Join(s.T().TempDir(), "lexicon.yml")
	s.Require().NoError(ioutil.WriteFile(path, []byte(testLexicon), 0600))

	lexicon, err := Load(path)
	s.Require().NoError(err)
	s.Equal("it", lexicon.Language)
	s.Contains(lexicon.Words, "bello")

	_, err = Load(filepath.Join(s.T().TempDir(), "missing.yml"))
	s.Error(err)
}

func (s *LexiconSuite) TestLoadDefault() {
	lexicon, err := Load("")
	s.Require().NoError(err)

	got, err := lexicon.Analyze(context.Background(), "Che bella giornata, sono molto felice!")
	s.Require().NoError(err)
	s.Greater(got.Polarity, 0.0)

	got, err = lexicon.Analyze(context.Background(), "Il film era noioso e terribile.")
	s.Require().NoError(err)
	s.Less(got.Polarity, 0.0)
}
