// Package navigation turns page interactions into router transitions.
package navigation

import (
	"fmt"

	"github.com/IamTheLime/airbyte/internal/projection"
)

// Console routes.
const (
	RouteSource        = "/source"
	RouteDestination   = "/destination"
	RouteConnectionNew = "/new-connection"
)

// State is the payload carried to the connection-creation route.
type State struct {
	SourceID      string `json:"source_id,omitempty"`
	DestinationID string `json:"destination_id,omitempty"`
}

// Request is a transition the router should perform.
type Request struct {
	WorkspaceID string `json:"workspace_id"`
	Path        string `json:"path"`
	State       *State `json:"state,omitempty"`
}

// RowClick opens the detail page of the clicked table row.
func RowClick(workspaceID string, kind projection.Kind, entityID string) (Request, error) {
	if entityID == "" {
		return Request{}, fmt.Errorf("entity id cannot be empty")
	}
	var base string
	switch kind {
	case projection.KindSource:
		base = RouteSource
	case projection.KindDestination:
		base = RouteDestination
	default:
		return Request{}, fmt.Errorf("unknown kind %q", kind)
	}
	return Request{WorkspaceID: workspaceID, Path: base + "/" + entityID}, nil
}

// SelectDestination starts connection creation for a source. The create-new
// sentinel leaves the destination unset so the user creates one first.
func SelectDestination(workspaceID, sourceID, value string) (Request, error) {
	if sourceID == "" {
		return Request{}, fmt.Errorf("source id cannot be empty")
	}
	if value == "" {
		return Request{}, fmt.Errorf("selected value cannot be empty")
	}
	state := &State{SourceID: sourceID}
	if value != projection.CreateNewItem {
		state.DestinationID = value
	}
	return Request{
		WorkspaceID: workspaceID,
		Path:        RouteSource + RouteConnectionNew,
		State:       state,
	}, nil
}
