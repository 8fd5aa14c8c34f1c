package analysis

import (
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Table maps dependency tags to display labels. Lookups never fail: a tag
// missing from Labels resolves to Default.
type Table struct {
	Labels  map[string]string
	Default string
}

func (t Table) Label(dep string) string {
	if label, ok := t.Labels[dep]; ok {
		return label
	}
	return t.Default
}

// Mapper holds the grammatical role and logical complement tables.
type Mapper struct {
	Roles       Table
	Complements Table
}

func DefaultRoles() Table {
	return Table{
		Default: "Altro",
		Labels: map[string]string{
			"nsubj":  "Soggetto",
			"ROOT":   "Predicato Verbale",
			"obj":    "Complemento Oggetto",
			"iobj":   "Complemento di Termine",
			"advmod": "Avverbio Modificatore",
			"amod":   "Aggettivo Modificatore",
			"det":    "Determinante",
			"prep":   "Preposizione",
			"aux":    "Verbo Ausiliare",
			"cc":     "Congiunzione Coordinante",
			"mark":   "Congiunzione Subordinante",
			"obl":    "Complemento Indiretto",
			"ccomp":  "Proposizione Oggettiva",
			"xcomp":  "Complemento Predicativo dell'Oggetto",
			"punct":  "Punteggiatura",
		},
	}
}

func DefaultComplements() Table {
	return Table{
		Default: "Altro Complemento",
		Labels: map[string]string{
			"obj":    "Complemento Oggetto Diretto",
			"obl":    "Complemento Circostanziale",
			"iobj":   "Complemento Indiretto",
			"xcomp":  "Complemento Predicativo dell'Oggetto",
			"ccomp":  "Proposizione Oggettiva",
			"nsubj":  "Soggetto Logico",
			"advmod": "Complemento di Modo o Maniera",
			"prep":   "Preposizione Logica",
			"pobj":   "Oggetto Preposizionale",
		},
	}
}

func DefaultMapper() *Mapper {
	return &Mapper{
		Roles:       DefaultRoles(),
		Complements: DefaultComplements(),
	}
}

// Role returns the grammatical role label of a dependency tag.
func (m *Mapper) Role(dep string) string {
	return m.Roles.Label(dep)
}

// Complement returns the logical complement label of a dependency tag.
func (m *Mapper) Complement(dep string) string {
	return m.Complements.Label(dep)
}

type yamlMapper struct {
	Roles             map[string]string `yaml:"roles"`
	RoleDefault       string            `yaml:"role_default"`
	Complements       map[string]string `yaml:"complements"`
	ComplementDefault string            `yaml:"complement_default"`
}

// LoadMapper returns the default mapper with the labels of the YAML file at path
// added on top. Tags in the file replace built-in labels; an empty path returns
// the defaults.
func LoadMapper(path string) (*Mapper, error) {
	mapper := DefaultMapper()
	if path == "" {
		return mapper, nil
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find role tables at %v", path))
		return nil, err
	}

	var tables yamlMapper
	if err := yaml.Unmarshal(b, &tables); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load role tables from %v", path))
		return nil, err
	}

	for dep, label := range tables.Roles {
		mapper.Roles.Labels[dep] = label
	}
	for dep, label := range tables.Complements {
		mapper.Complements.Labels[dep] = label
	}
	if tables.RoleDefault != "" {
		mapper.Roles.Default = tables.RoleDefault
	}
	if tables.ComplementDefault != "" {
		mapper.Complements.Default = tables.ComplementDefault
	}

	log.Info().Msg(fmt.Sprintf("role tables set from %v", path))
	return mapper, nil
}
