package analysis

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
)

// Assemble converts a parsed document into token annotations, entity spans and
// the logical analysis summary. Correction and sentiment are left for the caller.
func Assemble(doc *nlp.Doc, mapper *Mapper) Result {
	tokens := make([]Token, len(doc.Tokens))
	for i, token := range doc.Tokens {
		tokens[i] = Token{
			Text:            token.Text,
			Lemma:           token.Lemma,
			Pos:             token.Pos,
			Dep:             token.Dep,
			Role:            mapper.Role(token.Dep),
			LogicalAnalysis: mapper.Complement(token.Dep),
			IsStop:          token.IsStop,
			Morph:           token.Morph,
		}
	}

	entities := make([]Entity, len(doc.Ents))
	for i, ent := range doc.Ents {
		entities[i] = Entity{
			Text:  ent.Text,
			Label: ent.Label,
			Start: ent.Start,
			End:   ent.End,
		}
	}

	return Result{
		Tokens:   tokens,
		Entities: entities,
		Summary:  Summarize(doc),
	}
}

// Summarize collects the texts of subject, predicate, direct object, indirect
// complement and preposition tokens, in sentence order.
func Summarize(doc *nlp.Doc) Summary {
	summary := Summary{
		Subjects:            []string{},
		Predicates:          []string{},
		DirectObjects:       []string{},
		IndirectComplements: []string{},
		Prepositions:        []string{},
	}
	for _, token := range doc.Tokens {
		switch token.Dep {
		case "nsubj":
			summary.Subjects = append(summary.Subjects, token.Text)
		case "ROOT":
			summary.Predicates = append(summary.Predicates, token.Text)
		case "obj":
			summary.DirectObjects = append(summary.DirectObjects, token.Text)
		case "obl":
			summary.IndirectComplements = append(summary.IndirectComplements, token.Text)
		case "prep":
			summary.Prepositions = append(summary.Prepositions, token.Text)
		}
	}
	return summary
}
