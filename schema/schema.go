// Package schema parses the resource-model schema document and
// extracts the fields restricted to a controlled vocabulary.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MAEASaM/shataba/document"
)

// Concept-bearing datatypes. Only nodes declared with one of these
// reference a collection of permitted values.
const (
	DatatypeConcept     = "concept"
	DatatypeConceptList = "concept-list"
)

// Document is the parsed resource-model schema.
type Document struct {
	Graphs []Graph `json:"graph"`
}

// Graph is one resource graph within the schema.
type Graph struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
}

// Node is a single schema node. Config is the type-specific
// configuration block and is decoded lazily per datatype.
type Node struct {
	Name     string          `json:"name"`
	NodeID   string          `json:"nodeid"`
	Datatype string          `json:"datatype"`
	Config   json.RawMessage `json:"config"`
}

// conceptConfig is the config block shape for concept-bearing nodes.
type conceptConfig struct {
	RDMCollection string `json:"rdmCollection"`
}

// FieldReference links a concept field to the collection it references.
type FieldReference struct {
	// FieldName is the node's declared display name. Duplicate names are
	// allowed by the source schema and preserved positionally.
	FieldName string
	// NodeID is the schema node identifier.
	NodeID string
	// CollectionID is the referenced collection id in canonical
	// lowercase, or empty when the node config carries none. Fields
	// without a collection are retained so summary statistics can report
	// how many of the schema's concept fields actually resolved.
	CollectionID string
}

// Parse decodes the schema document. Malformed JSON yields a
// *document.ParseError.
func Parse(path string, r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, document.NewParseError(path, err)
	}
	return &doc, nil
}

// ParseFile decodes the schema document from a file.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resource model: %w", err)
	}
	defer f.Close()
	return Parse(path, f)
}

// ConceptFields walks every graph's node list and returns one
// FieldReference per concept or concept-list node, in declaration
// order. The walk matches on the declared datatype tag; nodes of other
// datatypes are ignored entirely.
func (d *Document) ConceptFields() []FieldReference {
	var refs []FieldReference
	for _, g := range d.Graphs {
		for _, n := range g.Nodes {
			if n.Datatype != DatatypeConcept && n.Datatype != DatatypeConceptList {
				continue
			}
			refs = append(refs, FieldReference{
				FieldName:    n.Name,
				NodeID:       n.NodeID,
				CollectionID: collectionID(n.Config),
			})
		}
	}
	return refs
}

// collectionID extracts the referenced collection id from a node's
// config block. A missing or undecodable block yields the empty string
// rather than an error; the field stays in the result as unresolved.
func collectionID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var cfg conceptConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(cfg.RDMCollection))
}
