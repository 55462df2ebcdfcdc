package schema

import (
	"strings"
	"testing"

	"github.com/MAEASaM/shataba/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModel = `{
  "graph": [
    {
      "name": "Site",
      "nodes": [
        {"name": "Site Name", "nodeid": "n1", "datatype": "string"},
        {"name": "Certainty", "nodeid": "n2", "datatype": "concept",
         "config": {"rdmCollection": "11111111-2222-3333-4444-555555555555"}},
        {"name": "Site Type", "nodeid": "n3", "datatype": "concept-list",
         "config": {"rdmCollection": "66666666-7777-8888-9999-AAAAAAAAAAAA"}},
        {"name": "Condition", "nodeid": "n4", "datatype": "concept",
         "config": {}},
        {"name": "Certainty", "nodeid": "n5", "datatype": "concept",
         "config": {"rdmCollection": "11111111-2222-3333-4444-555555555555"}}
      ]
    }
  ]
}`

func TestConceptFields(t *testing.T) {
	doc, err := Parse("Site.json", strings.NewReader(sampleModel))
	require.NoError(t, err)

	refs := doc.ConceptFields()
	require.Len(t, refs, 4)

	assert.Equal(t, "Certainty", refs[0].FieldName)
	assert.Equal(t, "n2", refs[0].NodeID)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", refs[0].CollectionID)

	// Collection ids are canonicalized to lowercase.
	assert.Equal(t, "66666666-7777-8888-9999-aaaaaaaaaaaa", refs[1].CollectionID)

	// A node without collection config is retained, not dropped.
	assert.Equal(t, "Condition", refs[2].FieldName)
	assert.Equal(t, "", refs[2].CollectionID)

	// Duplicate display names are preserved positionally.
	assert.Equal(t, "Certainty", refs[3].FieldName)
	assert.Equal(t, "n5", refs[3].NodeID)
}

func TestConceptFields_NoGraphs(t *testing.T) {
	doc, err := Parse("empty.json", strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, doc.ConceptFields())
}

func TestConceptFields_MissingConfig(t *testing.T) {
	input := `{"graph": [{"nodes": [{"name": "F", "datatype": "concept"}]}]}`
	doc, err := Parse("model.json", strings.NewReader(input))
	require.NoError(t, err)

	refs := doc.ConceptFields()
	require.Len(t, refs, 1)
	assert.Equal(t, "", refs[0].CollectionID)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse("model.json", strings.NewReader("{not json"))
	require.Error(t, err)

	var parseErr *document.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "model.json", parseErr.Path)
}
