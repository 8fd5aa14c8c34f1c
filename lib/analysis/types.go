package analysis

import "gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"

type Token struct {
	Text            string            `json:"text"`
	Lemma           string            `json:"lemma"`
	Pos             string            `json:"pos"`
	Dep             string            `json:"dep"`
	Role            string            `json:"role"`
	LogicalAnalysis string            `json:"logical_analysis"`
	IsStop          bool              `json:"is_stop"`
	Morph           map[string]string `json:"morph,omitempty"`
}

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Summary groups token texts into the categories of a logical analysis.
type Summary struct {
	Subjects            []string `json:"Soggetti"`
	Predicates          []string `json:"Predicati Verbali"`
	DirectObjects       []string `json:"Complementi Oggetto"`
	IndirectComplements []string `json:"Complementi Indiretti"`
	Prepositions        []string `json:"Preposizioni"`
}

type Result struct {
	Tokens     []Token         `json:"tokens"`
	Entities   []Entity        `json:"entities"`
	Summary    Summary         `json:"logical_analysis_summary"`
	Correction string          `json:"correction"`
	Sentiment  sentiment.Score `json:"sentiment"`
}
