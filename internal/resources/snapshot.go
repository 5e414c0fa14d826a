package resources

import (
	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/projection"
)

// Snapshot is one consistent set of collections of a workspace. Pages only
// project from a Snapshot whose every collection resolved.
type Snapshot struct {
	WorkspaceID            string
	Generation             uint64
	Changed                bool
	Sources                []models.Source
	Destinations           []models.Destination
	Connections            []models.Connection
	SourceDefinitions      []models.SourceDefinition
	DestinationDefinitions []models.DestinationDefinition
}

// SourceEntities reduces sources to projection entities.
func (s *Snapshot) SourceEntities() []projection.Entity {
	out := make([]projection.Entity, 0, len(s.Sources))
	for _, src := range s.Sources {
		out = append(out, projection.Entity{ID: src.ID, Name: src.Name, DefinitionID: src.SourceDefinitionID})
	}
	return out
}

// DestinationEntities reduces destinations to projection entities.
func (s *Snapshot) DestinationEntities() []projection.Entity {
	out := make([]projection.Entity, 0, len(s.Destinations))
	for _, dst := range s.Destinations {
		out = append(out, projection.Entity{ID: dst.ID, Name: dst.Name, DefinitionID: dst.DestinationDefinitionID})
	}
	return out
}

// ConnectionRefs reduces connections to their foreign keys and status.
func (s *Snapshot) ConnectionRefs() []projection.Connection {
	out := make([]projection.Connection, 0, len(s.Connections))
	for _, c := range s.Connections {
		out = append(out, projection.Connection{
			ID:            c.ID,
			SourceID:      c.SourceID,
			DestinationID: c.DestinationID,
			Status:        string(c.Status),
		})
	}
	return out
}

func (s *Snapshot) SourceDefinitionRefs() []projection.Definition {
	out := make([]projection.Definition, 0, len(s.SourceDefinitions))
	for _, d := range s.SourceDefinitions {
		out = append(out, projection.Definition{DefinitionID: d.ID, Name: d.Name, Icon: d.Icon})
	}
	return out
}

func (s *Snapshot) DestinationDefinitionRefs() []projection.Definition {
	out := make([]projection.Definition, 0, len(s.DestinationDefinitions))
	for _, d := range s.DestinationDefinitions {
		out = append(out, projection.Definition{DefinitionID: d.ID, Name: d.Name, Icon: d.Icon})
	}
	return out
}

// FindSource looks a source up by exact id.
func (s *Snapshot) FindSource(id string) (models.Source, bool) {
	for _, src := range s.Sources {
		if src.ID == id {
			return src, true
		}
	}
	return models.Source{}, false
}
