package projection

import (
	"fmt"
	"sort"
	"strings"
)

// Sort fields accepted by SortRows.
const (
	SortByName            = "name"
	SortByDefinitionName  = "definition_name"
	SortByConnectionCount = "connection_count"
)

// AllowedSortByFields lists the fields SortRows understands.
var AllowedSortByFields = map[string]bool{
	SortByName:            true,
	SortByDefinitionName:  true,
	SortByConnectionCount: true,
}

// SortRows returns a sorted copy of rows; the input slice is left untouched.
// Ties keep their projected order.
func SortRows(rows []TableRow, sortBy, sortOrder string) ([]TableRow, error) {
	if !AllowedSortByFields[sortBy] {
		return nil, fmt.Errorf("unsupported sort field %q", sortBy)
	}
	desc := false
	switch strings.ToLower(sortOrder) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return nil, fmt.Errorf("unsupported sort order %q", sortOrder)
	}

	sorted := make([]TableRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case SortByDefinitionName:
			return strings.ToLower(a.DefinitionName) < strings.ToLower(b.DefinitionName)
		case SortByConnectionCount:
			return a.ConnectionCount < b.ConnectionCount
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
	return sorted, nil
}
