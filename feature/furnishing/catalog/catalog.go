package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	tableTypes = "furniture_types"
	rowFields  = 3
)

// ItemDescriptor is a catalog entry: a logical furniture name and the family/type
// pair identifying the placeable item in the building model.
type ItemDescriptor struct {
	Name       string `json:"name"`
	FamilyName string `json:"family_name"`
	TypeName   string `json:"type_name"`
}

// Catalog maps logical furniture names to item descriptors.
type Catalog struct {
	items map[string]ItemDescriptor
	order []string
}

// BuildCatalog builds a catalog from (name, familyName, typeName) rows.
func BuildCatalog(rows [][]string) (*Catalog, error) {
	c := &Catalog{
		items: make(map[string]ItemDescriptor, len(rows)),
		order: make([]string, 0, len(rows)),
	}

	for i, row := range rows {
		if len(row) != rowFields {
			return nil, &RowError{Table: tableTypes, Index: i, Fields: len(row), Reason: "expected name, family name and type name"}
		}
		if row[0] == "" {
			return nil, &RowError{Table: tableTypes, Index: i, Fields: len(row), Reason: "empty furniture name"}
		}
		if _, exists := c.items[row[0]]; exists {
			continue
		}
		c.items[row[0]] = ItemDescriptor{Name: row[0], FamilyName: row[1], TypeName: row[2]}
		c.order = append(c.order, row[0])
	}

	return c, nil
}

// Lookup returns the descriptor for name. Surrounding whitespace is trimmed from
// name before the exact match; catalog keys are compared as stored.
func (c *Catalog) Lookup(name string) (ItemDescriptor, bool) {
	d, ok := c.items[strings.TrimSpace(name)]
	return d, ok
}

// Len returns the number of distinct names in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Names returns the catalog names in row order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Items returns the descriptors in row order.
func (c *Catalog) Items() []ItemDescriptor {
	out := make([]ItemDescriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

// Suggest returns the catalog name closest to name, for diagnostics on a miss.
// Candidates further away than a third of their length (minimum 1) are ignored.
func (c *Catalog) Suggest(name string) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return "", false
	}

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, key := range c.order {
		dist := levenshtein.ComputeDistance(query, strings.ToLower(key))
		if dist > suggestLimit(len(key)) {
			continue
		}
		candidates = append(candidates, candidate{name: key, dist: dist})
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	return candidates[0].name, true
}

func suggestLimit(n int) int {
	if n/3 < 1 {
		return 1
	}
	return n / 3
}
