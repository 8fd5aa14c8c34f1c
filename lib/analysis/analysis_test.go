package analysis

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/testhelpers"
)

type AnalysisSuite struct {
	suite.Suite
	mapper *Mapper
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}

func (s *AnalysisSuite) SetupTest() {
	s.mapper = DefaultMapper()
}

func (s *AnalysisSuite) TestLabels() {
	tests := []struct {
		dep        string
		role       string
		complement string
	}{
		{dep: "nsubj", role: "Soggetto", complement: "Soggetto Logico"},
		{dep: "ROOT", role: "Predicato Verbale", complement: "Altro Complemento"},
		{dep: "obj", role: "Complemento Oggetto", complement: "Complemento Oggetto Diretto"},
		{dep: "obl", role: "Complemento Indiretto", complement: "Complemento Circostanziale"},
		{dep: "pobj", role: "Altro", complement: "Oggetto Preposizionale"},
		{dep: "punct", role: "Punteggiatura", complement: "Altro Complemento"},
		{dep: "xyz", role: "Altro", complement: "Altro Complemento"},
		{dep: "", role: "Altro", complement: "Altro Complemento"},
	}
	for _, tt := range tests {
		s.T().Log(tt.dep)
		s.Equal(tt.role, s.mapper.Role(tt.dep))
		s.Equal(tt.complement, s.mapper.Complement(tt.dep))
	}
}

func (s *AnalysisSuite) TestAssemble() {
	doc := testhelpers.SentenceDoc()
	doc.Tokens[3].Morph = map[string]string{"Gender": "Fem", "Number": "Sing"}

	result := Assemble(doc, s.mapper)

	s.Require().Len(result.Tokens, 4)
	s.Equal(Token{
		Text:            "mangia",
		Lemma:           "mangiare",
		Pos:             "VERB",
		Dep:             "ROOT",
		Role:            "Predicato Verbale",
		LogicalAnalysis: "Altro Complemento",
	}, result.Tokens[1])
	s.Equal("Determinante", result.Tokens[2].Role)
	s.Equal(map[string]string{"Gender": "Fem", "Number": "Sing"}, result.Tokens[3].Morph)
	s.Equal([]Entity{{Text: "Marco", Label: "PER", Start: 0, End: 5}}, result.Entities)

	s.Equal([]string{"Marco"}, result.Summary.Subjects)
	s.Equal([]string{"mangia"}, result.Summary.Predicates)
	s.Equal([]string{"mela"}, result.Summary.DirectObjects)
	s.Empty(result.Summary.IndirectComplements)
	s.Empty(result.Summary.Prepositions)
}

func (s *AnalysisSuite) TestAssembleEmptyDocSerialisesEmptyLists() {
	result := Assemble(&nlp.Doc{}, s.mapper)

	b, err := json.Marshal(result)
	s.Require().NoError(err)
	s.JSONEq(`{
		"tokens": [],
		"entities": [],
		"logical_analysis_summary": {
			"Soggetti": [],
			"Predicati Verbali": [],
			"Complementi Oggetto": [],
			"Complementi Indiretti": [],
			"Preposizioni": []
		},
		"correction": "",
		"sentiment": [0, 0]
	}`, string(b))
}

func (s *AnalysisSuite) TestSummarizeKeepsTokenOrder() {
	doc := testhelpers.Doc(
		testhelpers.Tok("Anna", "PROPN", "nsubj", 2),
		testhelpers.Tok("e", "CCONJ", "cc", 2),
		testhelpers.Tok("Luca", "PROPN", "nsubj", 3),
		testhelpers.Tok("vanno", "VERB", "ROOT", 3),
		testhelpers.Tok("a", "ADP", "prep", 5),
		testhelpers.Tok("Roma", "PROPN", "obl", 3),
	)

	summary := Summarize(doc)

	s.Equal([]string{"Anna", "Luca"}, summary.Subjects)
	s.Equal([]string{"vanno"}, summary.Predicates)
	s.Equal([]string{"a"}, summary.Prepositions)
	s.Equal([]string{"Roma"}, summary.IndirectComplements)
	s.Equal([]string{}, summary.DirectObjects)
}

func (s *AnalysisSuite) TestLoadMapper() {
	path := filepath.Join(s.T().TempDir(), "roles.yml")
	s.Require().NoError(ioutil.WriteFile(path, []byte(`
roles:
  nsubj: Subject
  compound: Compound
complements:
  obj: Direct Object
role_default: Other
`), 0644))

	mapper, err := LoadMapper(path)
	s.Require().NoError(err)

	s.Equal("Subject", mapper.Role("nsubj"))
	s.Equal("Compound", mapper.Role("compound"))
	s.Equal("Predicato Verbale", mapper.Role("ROOT"))
	s.Equal("Other", mapper.Role("xyz"))
	s.Equal("Direct Object", mapper.Complement("obj"))
	s.Equal("Altro Complemento", mapper.Complement("xyz"))

	// built-in tables are rebuilt for each mapper
	s.Equal("Soggetto", DefaultMapper().Role("nsubj"))
}

func (s *AnalysisSuite) TestLoadMapperErrors() {
	_, err := LoadMapper(filepath.Join(s.T().TempDir(), "missing.yml"))
	s.Error(err)

	path := filepath.Join(s.T().TempDir(), "broken.yml")
	s.Require().NoError(ioutil.WriteFile(path, []byte("roles: [nsubj"), 0644))
	_, err = LoadMapper(path)
	s.Error(err)

	mapper, err := LoadMapper("")
	s.Require().NoError(err)
	s.Equal("Soggetto", mapper.Role("nsubj"))
}
