package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
)

// Score is a polarity in [-1, 1] and a subjectivity in [0, 1]. It is encoded
// as the JSON pair [polarity, subjectivity].
type Score struct {
	Polarity     float64
	Subjectivity float64
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (Score, error)
}

func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.Polarity, s.Subjectivity})
}

func (s *Score) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("sentiment: expected [polarity, subjectivity], got %d values", len(pair))
	}
	s.Polarity, s.Subjectivity = pair[0], pair[1]
	return nil
}

// Clamp bounds the score to its valid ranges.
func (s Score) Clamp() Score {
	return Score{
		Polarity:     clamp(s.Polarity, -1, 1),
		Subjectivity: clamp(s.Subjectivity, 0, 1),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
