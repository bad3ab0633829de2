package furnishing

import "room-furnisher/feature/furnishing/placement"

// RunReport is the outcome of a furnishing run.
type RunReport struct {
	placement.Result
	Source         string `json:"source"`
	Units          string `json:"units"`
	RoomsFurnished int    `json:"rooms_furnished"`
	GeneratedAt    string `json:"generated_at"`
	ExecutionTime  string `json:"execution_time"`
}

// SetExpansion is a set definition with its items resolved against the catalog.
type SetExpansion struct {
	Code      string         `json:"code"`
	RoomType  string         `json:"room_type"`
	ItemCount int            `json:"item_count"`
	Items     []ExpandedItem `json:"items"`
}

// ExpandedItem is one entry of an expanded set.
type ExpandedItem struct {
	Name       string `json:"name"`
	InCatalog  bool   `json:"in_catalog"`
	FamilyName string `json:"family_name,omitempty"`
	TypeName   string `json:"type_name,omitempty"`
	Suggestion string `json:"did_you_mean,omitempty"`
}
