// Package projection joins independently fetched connector collections into
// display-ready view models. Every function here is pure: inputs are never
// modified and each call returns freshly allocated slices.
package projection

// Kind selects which side of a connection an entity plays.
type Kind string

const (
	KindSource      Kind = "source"
	KindDestination Kind = "destination"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindSource || k == KindDestination
}

// CreateNewItem is the dropdown value reserved for the synthetic "create new" option.
const CreateNewItem = "create-new-item"

// NoIcon marks an absent icon. Renderers substitute their placeholder image.
const NoIcon = ""

// Entity is a source or destination reduced to the fields the joins need.
type Entity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DefinitionID string `json:"definition_id"`
}

// Definition is connector-type metadata referenced by Entity.DefinitionID.
type Definition struct {
	DefinitionID string `json:"definition_id"`
	Name         string `json:"name"`
	Icon         string `json:"icon,omitempty"`
}

// Connection links one source to one destination.
type Connection struct {
	ID            string `json:"connection_id"`
	SourceID      string `json:"source_id"`
	DestinationID string `json:"destination_id"`
	Status        string `json:"status"`
}

// ConnectedEntity is the counterpart of a row's entity through one connection.
type ConnectedEntity struct {
	ConnectionID string `json:"connection_id"`
	EntityID     string `json:"entity_id"`
	Status       string `json:"status"`
}

// TableRow is one line of the sources or destinations table.
type TableRow struct {
	EntityID        string            `json:"entity_id"`
	Name            string            `json:"name"`
	DefinitionName  string            `json:"definition_name"`
	Icon            string            `json:"icon"`
	ConnectionCount int               `json:"connection_count"`
	Enabled         bool              `json:"enabled"`
	Connections     []ConnectedEntity `json:"connections"`
}

// DropdownOption is one choice of the "add destination" dropdown.
type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}
