package projection

import "fmt"

// CreateNewLabel is the label of the synthetic dropdown option.
const CreateNewLabel = "Create new"

// statusActive is the connection status that marks a row as enabled.
const statusActive = "active"

// ProjectTable builds one row per entity, in input order. Definition fields
// come from the first definition whose id matches; a missing definition leaves
// DefinitionName empty and Icon absent. Connections are counted by the foreign
// key of the role given by kind.
func ProjectTable(entities []Entity, connections []Connection, definitions []Definition, kind Kind) []TableRow {
	rows := make([]TableRow, 0, len(entities))
	for _, entity := range entities {
		row := TableRow{
			EntityID:    entity.ID,
			Name:        entity.Name,
			Icon:        NoIcon,
			Connections: []ConnectedEntity{},
		}
		if def, ok := findDefinition(definitions, entity.DefinitionID); ok {
			row.DefinitionName = def.Name
			row.Icon = def.Icon
		}
		for _, conn := range connections {
			if roleID(conn, kind) != entity.ID {
				continue
			}
			row.Connections = append(row.Connections, ConnectedEntity{
				ConnectionID: conn.ID,
				EntityID:     counterpartID(conn, kind),
				Status:       conn.Status,
			})
			if conn.Status == statusActive {
				row.Enabled = true
			}
		}
		row.ConnectionCount = len(row.Connections)
		rows = append(rows, row)
	}
	return rows
}

// ProjectDropdown lists every destination followed by the create-new option,
// so the result always has len(destinations)+1 entries.
func ProjectDropdown(destinations []Entity, definitions []Definition) []DropdownOption {
	options := make([]DropdownOption, 0, len(destinations)+1)
	for _, dst := range destinations {
		icon := NoIcon
		if def, ok := findDefinition(definitions, dst.DefinitionID); ok {
			icon = def.Icon
		}
		options = append(options, DropdownOption{
			Label: dst.Name,
			Value: dst.ID,
			Icon:  icon,
		})
	}
	return append(options, DropdownOption{
		Label: CreateNewLabel,
		Value: CreateNewItem,
		Icon:  NoIcon,
	})
}

// ConnectionsFor returns the connections whose role foreign key equals
// entityID, preserving their order. The result is never nil.
func ConnectionsFor(entityID string, connections []Connection, role Kind) []Connection {
	matched := make([]Connection, 0)
	for _, conn := range connections {
		if roleID(conn, role) == entityID {
			matched = append(matched, conn)
		}
	}
	return matched
}

// DuplicateDefinitionError reports a definition id shared by several definitions.
type DuplicateDefinitionError struct {
	DefinitionID string
	Count        int
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("definition id %q appears %d times", e.DefinitionID, e.Count)
}

// CheckUniqueDefinitions returns a *DuplicateDefinitionError for the first
// definition id that is not unique. The joins above keep working on such input
// (first match wins) but callers should treat it as a data-layer defect.
func CheckUniqueDefinitions(definitions []Definition) error {
	seen := make(map[string]int, len(definitions))
	for _, def := range definitions {
		seen[def.DefinitionID]++
	}
	for _, def := range definitions {
		if n := seen[def.DefinitionID]; n > 1 {
			return &DuplicateDefinitionError{DefinitionID: def.DefinitionID, Count: n}
		}
	}
	return nil
}

func findDefinition(definitions []Definition, id string) (Definition, bool) {
	for _, def := range definitions {
		if def.DefinitionID == id {
			return def, true
		}
	}
	return Definition{}, false
}

func roleID(conn Connection, role Kind) string {
	if role == KindDestination {
		return conn.DestinationID
	}
	return conn.SourceID
}

func counterpartID(conn Connection, role Kind) string {
	if role == KindDestination {
		return conn.SourceID
	}
	return conn.DestinationID
}
