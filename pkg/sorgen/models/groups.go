package models

// GroupMapping holds the lookup tables derived from the "Groups" worksheet.
type GroupMapping struct {
	// GroupOrder lists group names in first-seen order.
	GroupOrder []string `json:"group_order"`
	// Groups maps group name to its item names in encounter order.
	// Repeated items are kept as-is, duplicates included.
	Groups map[string][]string `json:"groups"`
	// Units maps item name to its unit string (last occurrence wins).
	Units map[string]string `json:"units"`
}

// NewGroupMapping returns an empty, initialized mapping.
func NewGroupMapping() *GroupMapping {
	return &GroupMapping{
		Groups: make(map[string][]string),
		Units:  make(map[string]string),
	}
}

// Add records an item under a group, creating the group on first sight.
func (g *GroupMapping) Add(group, item string) {
	if _, ok := g.Groups[group]; !ok {
		g.GroupOrder = append(g.GroupOrder, group)
	}
	g.Groups[group] = append(g.Groups[group], item)
}
