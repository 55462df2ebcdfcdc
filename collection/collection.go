// Package collection parses the SKOS RDF/XML collection document into
// an index from collection id to its human-readable English label.
package collection

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/MAEASaM/shataba/document"
	"github.com/google/uuid"
)

// uuidPattern extracts a UUID-shaped substring from an identifying
// attribute that carries a full resource URI.
var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// Entry is the indexed label information for one collection.
type Entry struct {
	// Label is the English preferred label.
	Label string
	// LabelID is the identifier of the label record itself, when the
	// embedded record carried one.
	LabelID string
}

// Index maps collection id (canonical lowercase UUID string) to its
// label entry. Duplicate ids in the source are resolved by letting the
// later entry overwrite the earlier one.
type Index map[string]Entry

// Label returns the label for a collection id.
func (idx Index) Label(id string) (string, bool) {
	e, ok := idx[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return "", false
	}
	return e.Label, true
}

// rdfDocument mirrors the RDF/XML structure. Namespace-qualified field
// tags resolve prefixes structurally during decoding.
type rdfDocument struct {
	XMLName     xml.Name        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# RDF"`
	Collections []rdfCollection `xml:"http://www.w3.org/2004/02/skos/core# Collection"`
}

type rdfCollection struct {
	About  string     `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Labels []rdfLabel `xml:"http://www.w3.org/2004/02/skos/core# prefLabel"`
}

type rdfLabel struct {
	Lang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
	Text string `xml:",chardata"`
}

// labelRecord is the serialized record embedded as the prefLabel text
// content. It is plain text from the XML parser's point of view, not
// child elements.
type labelRecord struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// parseLabelRecord recovers the inner label from an embedded record.
// When the record cannot be parsed, the raw text is the label and ok
// reports whether anything non-empty was recovered.
func parseLabelRecord(text string) (label, labelID string, ok bool) {
	raw := strings.TrimSpace(text)
	var rec labelRecord
	if err := json.Unmarshal([]byte(raw), &rec); err == nil && rec.Value != "" {
		return rec.Value, rec.ID, true
	}
	return raw, "", raw != ""
}

// Parse builds the collection label index from RDF/XML data. The path
// identifies the source in errors only; no file access happens here.
// Malformed XML yields a *document.ParseError and no partial index.
func Parse(path string, r io.Reader) (Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, document.NewParseError(path, err)
	}

	var doc rdfDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, document.NewParseError(path, err)
	}

	idx := make(Index, len(doc.Collections))
	for _, coll := range doc.Collections {
		id := extractID(coll.About)
		if id == "" {
			continue
		}
		text, found := englishLabel(coll.Labels)
		if !found {
			continue
		}
		label, labelID, ok := parseLabelRecord(text)
		if !ok {
			continue
		}
		idx[id] = Entry{Label: label, LabelID: labelID}
	}
	return idx, nil
}

// ParseFile builds the collection label index from an RDF/XML file.
func ParseFile(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open collections: %w", err)
	}
	defer f.Close()
	return Parse(path, f)
}

// extractID pulls the collection id out of the identifying attribute.
// A UUID-shaped value is accepted as-is; otherwise the UUID substring
// is extracted by pattern. The result is canonical lowercase, or empty
// when no UUID is present.
func extractID(attr string) string {
	attr = strings.TrimSpace(attr)
	if id, err := uuid.Parse(attr); err == nil && len(attr) == 36 {
		return id.String()
	}
	if m := uuidPattern.FindString(attr); m != "" {
		return strings.ToLower(m)
	}
	return ""
}

// englishLabel picks the preferred label text: the first label with an
// English language attribute, falling back to the first label present.
func englishLabel(labels []rdfLabel) (string, bool) {
	if len(labels) == 0 {
		return "", false
	}
	for _, l := range labels {
		lang := strings.ToLower(l.Lang)
		if lang == "en" || strings.HasPrefix(lang, "en-") {
			return l.Text, true
		}
	}
	return labels[0].Text, true
}
