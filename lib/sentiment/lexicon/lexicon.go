package lexicon

import (
	"context"
	_ "embed"
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/text"
	"gopkg.in/yaml.v2"
)

// negation flips and dampens the polarity of the word it precedes.
const negation = -0.5

//go:embed default-it.yml
var defaultLexicon []byte

type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

type Lexicon struct {
	Language     string             `yaml:"language"`
	Words        map[string]Entry   `yaml:"words"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negations    []string           `yaml:"negations"`

	negations map[string]struct{}
}

// Load returns an unmarshalled lexicon from a YAML file at the given path.
// An empty path loads the built-in Italian lexicon.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		log.Info().Msg("using built-in sentiment lexicon")
		return Parse(defaultLexicon)
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find lexicon at %v", path))
		return nil, err
	}

	lexicon, err := Parse(b)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not load lexicon from %v", path))
		return nil, err
	}

	log.Info().Int("words", len(lexicon.Words)).Msg(fmt.Sprintf("lexicon set from %v", path))
	return lexicon, nil
}

func Parse(b []byte) (*Lexicon, error) {
	var lexicon Lexicon
	if err := yaml.Unmarshal(b, &lexicon); err != nil {
		return nil, err
	}

	// keys are looked up normalised
	words := make(map[string]Entry, len(lexicon.Words))
	for word, entry := range lexicon.Words {
		words[text.NormalizeString(word)] = entry
	}
	lexicon.Words = words

	intensifiers := make(map[string]float64, len(lexicon.Intensifiers))
	for word, factor := range lexicon.Intensifiers {
		intensifiers[text.NormalizeString(word)] = factor
	}
	lexicon.Intensifiers = intensifiers

	lexicon.negations = make(map[string]struct{}, len(lexicon.Negations))
	for _, word := range lexicon.Negations {
		lexicon.negations[text.NormalizeString(word)] = struct{}{}
	}

	return &lexicon, nil
}

// Analyze averages the entries of every lexicon word found in t. A word
// preceded by an intensifier has its score multiplied by the intensifier's factor;
// a word preceded by a negation (optionally followed by an intensifier) has its
// polarity flipped and halved.
func (l *Lexicon) Analyze(ctx context.Context, t string) (sentiment.Score, error) {
	tokens, err := text.Words(t)
	if err != nil {
		return sentiment.Score{}, err
	}

	var polarity, subjectivity float64
	var matched int
	for i, token := range tokens {
		if err := ctx.Err(); err != nil {
			return sentiment.Score{}, err
		}

		entry, ok := l.Words[text.NormalizeString(token.Text)]
		if !ok {
			continue
		}

		factor := 1.0
		prev := i - 1
		if prev >= 0 {
			if intensity, ok := l.Intensifiers[text.NormalizeString(tokens[prev].Text)]; ok {
				factor = intensity
				prev--
			}
		}
		p := entry.Polarity * factor
		if prev >= 0 {
			if _, ok := l.negations[text.NormalizeString(tokens[prev].Text)]; ok {
				p *= negation
			}
		}

		polarity += p
		subjectivity += entry.Subjectivity * factor
		matched++
	}

	if matched == 0 {
		return sentiment.Score{}, nil
	}

	return sentiment.Score{
		Polarity:     polarity / float64(matched),
		Subjectivity: subjectivity / float64(matched),
	}.Clamp(), nil
}

var _ sentiment.Analyzer = (*Lexicon)(nil)
