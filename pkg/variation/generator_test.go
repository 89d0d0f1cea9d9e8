package variation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(i int) Chooser {
	return func(n int) int { return i }
}

func TestRephrase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"What is the capital?", "Define the capital?"},
		{"No trigger here", "Reworded: No trigger here"},
		{"Explain why ice floats. Explain again.", "Describe why ice floats. Explain again."},
		// "What is" outranks "How" even when "How" appears first.
		{"How and What is it?", "How and Define it?"},
		{"Why is the sky blue and How?", "For what reason is the sky blue and How?"},
		{"State two properties", "Identify two properties"},
		{"List three gases", "Enumerate three gases"},
		{"Calculate the mass", "Determine the mass"},
		{"what is lowercase", "Reworded: what is lowercase"},
		{"", "Reworded: "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Rephrase(tt.in))
		})
	}
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, "Basic version: A... (simplified with fundamental concepts)", Simplify("A. B. C."))
	assert.Equal(t, "Basic version: ... (simplified with fundamental concepts)", Simplify(""))
	assert.Equal(t, "Basic version: ... (simplified with fundamental concepts)", Simplify(".starts with a dot"))

	long := strings.Repeat("x", 150)
	assert.Equal(t, "Basic version: "+strings.Repeat("x", 100)+"... (simplified with fundamental concepts)", Simplify(long))

	// the limit counts characters, not bytes
	accented := strings.Repeat("é", 120)
	assert.Equal(t, "Basic version: "+strings.Repeat("é", 100)+"... (simplified with fundamental concepts)", Simplify(accented))
}

func TestAdvanced(t *testing.T) {
	got := Advanced("Define entropy")
	assert.Equal(t, "Define entropy\n[Extended]: Now explain the underlying mechanisms and potential exceptions to this principle.", got)
}

func TestShiftPerspective(t *testing.T) {
	for i, ctx := range Contexts {
		got := ShiftPerspective("Define entropy", fixed(i))
		assert.Equal(t, "Define entropy\n[Context shift]: Consider this "+ctx+".", got)
	}
}

func TestChangeFormat(t *testing.T) {
	mc := ChangeFormat("Is this a question?")
	assert.Contains(t, mc, "Multiple choice format:")
	for _, label := range []string{"A)", "B)", "C)", "D)"} {
		assert.Contains(t, mc, label)
	}
	assert.Equal(t, "Multiple choice format: Is this a question?\nA) Option 1\nB) Option 2\nC) Option 3\nD) Option 4", mc)

	essay := ChangeFormat("Explain photosynthesis")
	assert.Contains(t, essay, "Essay format:")
	assert.Equal(t, "Essay format: Discuss in detail: Explain photosynthesis", essay)
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(fixed(1))

	inputs := []string{"What is the capital?", "Explain photosynthesis", ""}
	for _, in := range inputs {
		variations := g.Generate(in)
		require.Len(t, variations, 5)

		for i, v := range variations {
			assert.Equal(t, Types[i], v.Type)
			assert.NotEmpty(t, v.Manipulation)
		}
	}

	variations := g.Generate("What is the capital?")
	assert.Equal(t, "Define the capital?", variations[0].Question)
	assert.Equal(t, "What is the capital?\n[Context shift]: Consider this at the molecular level.", variations[3].Question)
	assert.Equal(t, "Different question format", variations[4].Manipulation)
}

func TestGenerateDefaultChooser(t *testing.T) {
	g := NewGenerator(nil)
	for i := 0; i < 20; i++ {
		v := g.Generate("Define entropy")[3]
		found := false
		for _, ctx := range Contexts {
			if strings.HasSuffix(v.Question, "Consider this "+ctx+".") {
				found = true
			}
		}
		assert.True(t, found, "unexpected perspective shift %q", v.Question)
	}
}

func TestApplyUnknownType(t *testing.T) {
	_, err := NewGenerator(nil).Apply(Type("shuffle"), "text")
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in     string
		want   Type
		wantOk bool
	}{
		{"rephrase", TypeRephrased, true},
		{"simplify", TypeSimplified, true},
		{"Advanced", TypeAdvanced, true},
		{"perspective", TypePerspectiveShift, true},
		{"format_change", TypeFormatChange, true},
		{"similar", TypePerspectiveShift, true},
		{"shuffle", TypeRephrased, false},
		{"", TypeRephrased, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}
