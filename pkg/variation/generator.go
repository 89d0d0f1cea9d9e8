// Package variation produces rule-based rewrites of exam questions.
package variation

import (
	"fmt"
	"math/rand"
)

// Chooser returns an index in [0, n).
type Chooser func(n int) int

// Generator applies the rewrite strategies. The only source of
// non-determinism is the Chooser used by the perspective shift.
type Generator struct {
	choose Chooser
}

// NewGenerator returns a Generator using choose, or math/rand when choose is nil.
// The default is intentionally non-deterministic and safe for concurrent use.
func NewGenerator(choose Chooser) *Generator {
	if choose == nil {
		choose = rand.Intn
	}
	return &Generator{choose: choose}
}

// Generate returns all five variations in the order of Types.
func (g *Generator) Generate(text string) []Variation {
	variations := make([]Variation, 0, len(Types))
	for _, t := range Types {
		variations = append(variations, g.variation(t, text))
	}
	return variations
}

// Apply runs a single strategy.
func (g *Generator) Apply(t Type, text string) (Variation, error) {
	if _, ok := manipulations[t]; !ok {
		return Variation{}, fmt.Errorf("unknown variation type %q", t)
	}
	return g.variation(t, text), nil
}

// variation runs the strategy for a known t.
func (g *Generator) variation(t Type, text string) Variation {
	var question string
	switch t {
	case TypeRephrased:
		question = Rephrase(text)
	case TypeSimplified:
		question = Simplify(text)
	case TypeAdvanced:
		question = Advanced(text)
	case TypePerspectiveShift:
		question = ShiftPerspective(text, g.choose)
	case TypeFormatChange:
		question = ChangeFormat(text)
	}

	return Variation{
		Type:         t,
		Question:     question,
		Manipulation: t.Manipulation(),
	}
}
