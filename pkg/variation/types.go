package variation

import "strings"

type Type string

const (
	TypeRephrased        Type = "rephrased"
	TypeSimplified       Type = "simplified"
	TypeAdvanced         Type = "advanced"
	TypePerspectiveShift Type = "perspective_shift"
	TypeFormatChange     Type = "format_change"
)

// Types lists every strategy in the order Generate emits them.
var Types = []Type{
	TypeRephrased,
	TypeSimplified,
	TypeAdvanced,
	TypePerspectiveShift,
	TypeFormatChange,
}

// Variation is one rewrite of a question. It is computed per request and never stored.
type Variation struct {
	Type         Type   `json:"type"`
	Question     string `json:"question"`
	Manipulation string `json:"manipulation"`
}

var manipulations = map[Type]string{
	TypeRephrased:        "Rephrased with different wording",
	TypeSimplified:       "Simplified version",
	TypeAdvanced:         "More challenging version",
	TypePerspectiveShift: "Different perspective or context",
	TypeFormatChange:     "Different question format",
}

// Manipulation returns the human readable description of t.
func (t Type) Manipulation() string {
	return manipulations[t]
}

var aliases = map[string]Type{
	"rephrase":          TypeRephrased,
	"rephrased":         TypeRephrased,
	"simplify":          TypeSimplified,
	"simplified":        TypeSimplified,
	"advanced":          TypeAdvanced,
	"perspective":       TypePerspectiveShift,
	"perspective_shift": TypePerspectiveShift,
	"similar":           TypePerspectiveShift,
	"format":            TypeFormatChange,
	"format_change":     TypeFormatChange,
}

// ParseType maps a request value to a strategy. Unknown or empty values
// fall back to TypeRephrased; ok reports whether s was recognised.
func ParseType(s string) (t Type, ok bool) {
	t, ok = aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return TypeRephrased, false
	}
	return t, true
}
