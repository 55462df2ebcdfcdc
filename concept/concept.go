// Package concept loads the JSON concept catalog: the mapping from
// concept-category name to its permitted value strings.
package concept

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/MAEASaM/shataba/document"
)

// Catalog holds the permitted values per concept category. Iteration
// order over categories is the sorted category-name order, fixed at
// load time, so that every lookup that scans categories is
// deterministic across runs.
type Catalog struct {
	categories map[string][]string
	names      []string
}

// Parse decodes the concept catalog. Malformed JSON yields a
// *document.ParseError.
func Parse(path string, r io.Reader) (*Catalog, error) {
	var categories map[string][]string
	if err := json.NewDecoder(r).Decode(&categories); err != nil {
		return nil, document.NewParseError(path, err)
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Catalog{categories: categories, names: names}, nil
}

// ParseFile decodes the concept catalog from a file.
func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open concepts: %w", err)
	}
	defer f.Close()
	return Parse(path, f)
}

// Values returns the permitted values for an exact category name.
func (c *Catalog) Values(name string) ([]string, bool) {
	values, ok := c.categories[name]
	return values, ok
}

// Names returns the category names in the catalog's iteration order.
// The returned slice must not be modified.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.names)
}
