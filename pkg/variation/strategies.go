package variation

import (
	"fmt"
	"strings"
)

type replacement struct {
	trigger string
	with    string
}

// Checked in order; only the first trigger found is applied.
var rephrasings = []replacement{
	{"What is", "Define"},
	{"Explain", "Describe"},
	{"Calculate", "Determine"},
	{"Why", "For what reason"},
	{"How", "In what way"},
	{"State", "Identify"},
	{"List", "Enumerate"},
}

// Contexts used by ShiftPerspective.
var Contexts = []string{
	"in an industrial setting",
	"at the molecular level",
	"from an environmental perspective",
	"in a real-world application",
	"considering quantum mechanics",
}

const (
	simplifyLimit  = 100
	advancedSuffix = "\n[Extended]: Now explain the underlying mechanisms and potential exceptions to this principle."
)

// Rephrase replaces the first occurrence of the first matching trigger phrase.
func Rephrase(text string) string {
	for _, r := range rephrasings {
		if strings.Contains(text, r.trigger) {
			return strings.Replace(text, r.trigger, r.with, 1)
		}
	}
	return "Reworded: " + text
}

// Simplify keeps the first sentence, or the first 100 characters when there is no period.
func Simplify(text string) string {
	var snippet string
	if i := strings.IndexByte(text, '.'); i >= 0 {
		snippet = text[:i]
	} else {
		snippet = truncateRunes(text, simplifyLimit)
	}
	return fmt.Sprintf("Basic version: %s... (simplified with fundamental concepts)", snippet)
}

func Advanced(text string) string {
	return text + advancedSuffix
}

// ShiftPerspective appends a context prompt picked by choose from Contexts.
func ShiftPerspective(text string, choose Chooser) string {
	return fmt.Sprintf("%s\n[Context shift]: Consider this %s.", text, Contexts[choose(len(Contexts))])
}

// ChangeFormat turns questions into a multiple choice item and statements into an essay prompt.
func ChangeFormat(text string) string {
	if strings.Contains(text, "?") {
		return fmt.Sprintf("Multiple choice format: %s\nA) Option 1\nB) Option 2\nC) Option 3\nD) Option 4", text)
	}
	return "Essay format: Discuss in detail: " + text
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
