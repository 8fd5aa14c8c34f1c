package main

import (
	"context"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/analysis"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/grammar"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/render"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"
)

const conjugatedSuffix = " (forma coniugata)"

type controller struct {
	parser   nlp.Parser
	checker  grammar.Checker
	analyzer sentiment.Analyzer
	renderer render.Renderer
	mapper   *analysis.Mapper
}

type Conjugation struct {
	Original   string `json:"original"`
	Conjugated string `json:"conjugated"`
}

// Analyze parses text, labels its tokens, corrects it and scores its sentiment.
// The adapters are called one after another and the first error aborts the analysis.
func (c controller) Analyze(ctx context.Context, text string) (analysis.Result, error) {
	doc, err := c.parser.Parse(ctx, text)
	if err != nil {
		return analysis.Result{}, err
	}
	result := analysis.Assemble(doc, c.mapper)

	matches, err := c.checker.Check(ctx, text)
	if err != nil {
		return analysis.Result{}, err
	}
	result.Correction = grammar.Correct(text, matches)

	result.Sentiment, err = c.analyzer.Analyze(ctx, text)
	if err != nil {
		return analysis.Result{}, err
	}

	return result, nil
}

func (c controller) Display(ctx context.Context, text string) (string, error) {
	doc, err := c.parser.Parse(ctx, text)
	if err != nil {
		return "", err
	}
	return c.renderer.Render(doc)
}

// Conjugate is a placeholder: no conjugation is performed.
func (c controller) Conjugate(word string) Conjugation {
	return Conjugation{
		Original:   word,
		Conjugated: word + conjugatedSuffix,
	}
}
