// Package category defines the ordered extension-to-category table.
package category

import (
	"fmt"
	"strings"

	"autoclean/internal/model"
)

// Category pairs a display label with the extensions it claims.
// Labels carry a leading icon token for presentation; DisplayName strips it.
type Category struct {
	Label      string
	Extensions []string
}

// Table is an ordered, immutable category table. Declaration order is the
// tie-break and display order everywhere downstream.
type Table struct {
	byExt      map[string][]string
	index      map[string]int
	fallback   string
	categories []Category
}

// NewTable validates and indexes a category list. Exactly one label must be
// designated as the fallback, and it must claim no extensions.
func NewTable(categories []Category, fallback string) (*Table, error) {
	t := &Table{
		byExt:      make(map[string][]string),
		index:      make(map[string]int, len(categories)),
		fallback:   fallback,
		categories: categories,
	}

	fallbackSeen := false
	for i, cat := range categories {
		if cat.Label == "" {
			return nil, fmt.Errorf("category at position %d has an empty label", i)
		}
		if _, dup := t.index[cat.Label]; dup {
			return nil, fmt.Errorf("duplicate category label %q", cat.Label)
		}
		t.index[cat.Label] = i

		if cat.Label == fallback {
			fallbackSeen = true
			if len(cat.Extensions) != 0 {
				return nil, fmt.Errorf("fallback category %q must not claim extensions", fallback)
			}
			continue
		}

		for _, ext := range cat.Extensions {
			norm := model.NormalizeExtension(ext)
			if norm == "" {
				continue
			}
			labels := t.byExt[norm]
			// Category lists may repeat an extension; record each label once.
			if len(labels) > 0 && labels[len(labels)-1] == cat.Label {
				continue
			}
			t.byExt[norm] = append(labels, cat.Label)
		}
	}

	if !fallbackSeen {
		return nil, fmt.Errorf("fallback category %q not present in table", fallback)
	}

	return t, nil
}

// Lookup returns every category label claiming the given extension, in table
// order. The extension is normalized before matching. A nil result means the
// caller should file the record under the fallback category.
func (t *Table) Lookup(ext string) []string {
	return t.byExt[model.NormalizeExtension(ext)]
}

// Fallback returns the designated sink label for unmatched extensions.
func (t *Table) Fallback() string {
	return t.fallback
}

// Categories returns the table entries in declaration order.
func (t *Table) Categories() []Category {
	return t.categories
}

// Labels returns every category label in declaration order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.categories))
	for i, cat := range t.categories {
		labels[i] = cat.Label
	}
	return labels
}

// Index returns a label's declaration position, or -1 if unknown.
// Used as the deterministic tie-break when sorting report output.
func (t *Table) Index(label string) int {
	if i, ok := t.index[label]; ok {
		return i
	}
	return -1
}

// DisplayName strips the leading icon token from a category label, yielding
// the name used for the on-disk destination folder.
func DisplayName(label string) string {
	fields := strings.Fields(label)
	if len(fields) > 1 {
		return strings.Join(fields[1:], " ")
	}
	return label
}
