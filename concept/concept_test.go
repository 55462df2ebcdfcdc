package concept

import (
	"strings"
	"testing"

	"github.com/MAEASaM/shataba/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `{"Certainty": ["Certain", "Probable"], "Site Type": ["Settlement", "Cemetery"]}`

	cat, err := Parse("concepts.json", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	values, ok := cat.Values("Certainty")
	require.True(t, ok)
	assert.Equal(t, []string{"Certain", "Probable"}, values)

	_, ok = cat.Values("certainty")
	assert.False(t, ok, "Values is exact, case-sensitive lookup")
}

func TestNames_DeterministicOrder(t *testing.T) {
	input := `{"Zebra": [], "Alpha": [], "Middle": []}`

	cat, err := Parse("concepts.json", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Middle", "Zebra"}, cat.Names())
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse("concepts.json", strings.NewReader("[1,2]"))
	require.Error(t, err)

	var parseErr *document.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "concepts.json", parseErr.Path)
}
