package catalog

import "strings"

const tableSets = "furniture_sets"

// SetDefinition is one row of the set table.
type SetDefinition struct {
	Code     string   `json:"code"`
	RoomType string   `json:"room_type"`
	Items    []string `json:"items"`
}

// ItemCount returns the number of entries in the set, repetitions included.
func (s SetDefinition) ItemCount() int {
	return len(s.Items)
}

// SetTable is the ordered list of set definitions.
type SetTable struct {
	sets []SetDefinition
}

// BuildSetTable builds a set table from (code, roomType, "name1, name2, ...") rows.
func BuildSetTable(rows [][]string) (*SetTable, error) {
	t := &SetTable{sets: make([]SetDefinition, 0, len(rows))}

	for i, row := range rows {
		if len(row) != rowFields {
			return nil, &RowError{Table: tableSets, Index: i, Fields: len(row), Reason: "expected set code, room type and furniture list"}
		}
		t.sets = append(t.sets, SetDefinition{
			Code:     row[0],
			RoomType: row[1],
			Items:    strings.Split(row[2], ","),
		})
	}

	return t, nil
}

// Match returns every definition whose code equals code, in table order.
func (t *SetTable) Match(code string) []SetDefinition {
	var out []SetDefinition
	for _, s := range t.sets {
		if s.Code == code {
			out = append(out, s)
		}
	}
	return out
}

// Sets returns all definitions in table order.
func (t *SetTable) Sets() []SetDefinition {
	out := make([]SetDefinition, len(t.sets))
	copy(out, t.sets)
	return out
}

// Len returns the number of definitions.
func (t *SetTable) Len() int {
	return len(t.sets)
}

// StripHeader drops the header row of a raw table.
func StripHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}
