package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Certain", "certain"},
		{"strips punctuation", "Material/Object Type", "materialobjecttype"},
		{"strips whitespace", "material object type", "materialobjecttype"},
		{"keeps digits", "Phase 2", "phase2"},
		{"empty input", "", ""},
		{"punctuation only", "-- / ??", ""},
		{"unicode fold", "ﬁeld", "field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Value(tt.input))
		})
	}
}

func TestValue_Equivalence(t *testing.T) {
	assert.Equal(t, Value("Material/Object Type"), Value("material object type"))
	assert.NotEqual(t, Value("abc"), Value("abd"))
}

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher([]string{"Certain", "Probable"})

	assert.Equal(t, Member, m.Match("Certain"))
	assert.Equal(t, Member, m.Match("probable"))
	assert.Equal(t, Member, m.Match("  pro-bable "))
	assert.Equal(t, Offending, m.Match("maybe"))
	assert.Equal(t, Empty, m.Match(""))
	assert.Equal(t, Empty, m.Match("---"))
}

func TestMatcher_SharedNormalization(t *testing.T) {
	// Catalog values go through the same normalization as observed
	// values, so a messy catalog entry still matches its clean form.
	m := NewMatcher([]string{"Stone/Brick Built"})
	assert.Equal(t, Member, m.Match("stone brick built"))
}

func TestMatcher_EmptyPermittedValueIgnored(t *testing.T) {
	m := NewMatcher([]string{"", "  ", "Certain"})
	// Empty catalog entries never make an empty observation a member.
	assert.Equal(t, Empty, m.Match(""))
	assert.Equal(t, Member, m.Match("certain"))
}
