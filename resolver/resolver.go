// Package resolver joins the schema field references, the collection
// label index, and the concept catalog into per-field mappings from
// field name to permitted value set.
package resolver

import (
	"strings"

	"github.com/MAEASaM/shataba/collection"
	"github.com/MAEASaM/shataba/concept"
	"github.com/MAEASaM/shataba/schema"
)

// FieldMapping is the resolved chain result for one schema field. Any
// stage of the chain can fail to resolve, in which case the later
// fields stay at their zero values rather than being defaulted.
type FieldMapping struct {
	FieldName    string
	NodeID       string
	CollectionID string
	Label        string
	CategoryName string
	// PermittedValues is non-nil exactly when CollectionID, Label and
	// CategoryName all resolved.
	PermittedValues []string
}

// Resolved reports whether the full chain resolved down to a permitted
// value set.
func (m FieldMapping) Resolved() bool {
	return m.PermittedValues != nil
}

// Resolve maps a single field reference through the chain: collection
// id, then label, then concept category, then permitted values. This
// one function serves both single lookups and bulk resolution so the
// matching semantics cannot diverge.
//
// Category matching is two-tier. Tier one is an exact, case-sensitive
// whole-string match of the label against the category name. Tier two
// is case-insensitive substring containment in either direction; when
// several categories satisfy it, the first in catalog iteration order
// wins. That tie-break is deliberate documented behavior, not a claim
// of best match.
func Resolve(ref schema.FieldReference, idx collection.Index, cat *concept.Catalog) FieldMapping {
	m := FieldMapping{
		FieldName:    ref.FieldName,
		NodeID:       ref.NodeID,
		CollectionID: ref.CollectionID,
	}
	if m.CollectionID == "" {
		return m
	}

	label, ok := idx.Label(m.CollectionID)
	if !ok {
		return m
	}
	m.Label = label

	category, ok := matchCategory(label, cat)
	if !ok {
		return m
	}
	m.CategoryName = category

	values, _ := cat.Values(category)
	if values == nil {
		values = []string{}
	}
	m.PermittedValues = values
	return m
}

// ResolveAll resolves every field reference, preserving order.
func ResolveAll(refs []schema.FieldReference, idx collection.Index, cat *concept.Catalog) []FieldMapping {
	mappings := make([]FieldMapping, len(refs))
	for i, ref := range refs {
		mappings[i] = Resolve(ref, idx, cat)
	}
	return mappings
}

// matchCategory finds the concept category for a collection label.
func matchCategory(label string, cat *concept.Catalog) (string, bool) {
	if _, ok := cat.Values(label); ok {
		return label, true
	}

	lower := strings.ToLower(label)
	for _, name := range cat.Names() {
		nameLower := strings.ToLower(name)
		if strings.Contains(lower, nameLower) || strings.Contains(nameLower, lower) {
			return name, true
		}
	}
	return "", false
}

// Summary counts how far the field mappings resolved through the
// chain. It backs the "N of M fields resolved fully" statistic even
// when some stages failed.
type Summary struct {
	TotalFields    int
	WithCollection int
	WithLabel      int
	WithCategory   int
}

// Summarize computes resolution statistics over a mapping sequence.
func Summarize(mappings []FieldMapping) Summary {
	s := Summary{TotalFields: len(mappings)}
	for _, m := range mappings {
		if m.CollectionID != "" {
			s.WithCollection++
		}
		if m.Label != "" {
			s.WithLabel++
		}
		if m.CategoryName != "" {
			s.WithCategory++
		}
	}
	return s
}
