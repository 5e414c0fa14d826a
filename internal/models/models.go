package models

import (
	"time"
)

// ConnectionStatus is the lifecycle state of a connection.
type ConnectionStatus string

const (
	ConnectionStatusActive     ConnectionStatus = "active"
	ConnectionStatusInactive   ConnectionStatus = "inactive"
	ConnectionStatusDeprecated ConnectionStatus = "deprecated"
)

// ValidConnectionStatuses defines the allowed connection statuses.
var ValidConnectionStatuses = map[ConnectionStatus]bool{
	ConnectionStatusActive:     true,
	ConnectionStatusInactive:   true,
	ConnectionStatusDeprecated: true,
}

// Workspace is the tenant under which every other record is fetched.
// @Description Workspace scopes sources, destinations, connections and definitions.
type Workspace struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;unique"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SourceDefinition is connector-type metadata shared by many sources.
// @Description SourceDefinition holds the display name and icon of a source connector type.
type SourceDefinition struct {
	ID               string    `json:"source_definition_id" gorm:"type:varchar(64);primaryKey"`
	WorkspaceID      string    `json:"workspace_id" gorm:"type:varchar(64);not null;index"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	DockerRepository string    `json:"docker_repository,omitempty" gorm:"type:varchar(255)"`
	Icon             string    `json:"icon,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DestinationDefinition is connector-type metadata shared by many destinations.
// @Description DestinationDefinition holds the display name and icon of a destination connector type.
type DestinationDefinition struct {
	ID               string    `json:"destination_definition_id" gorm:"type:varchar(64);primaryKey"`
	WorkspaceID      string    `json:"workspace_id" gorm:"type:varchar(64);not null;index"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	DockerRepository string    `json:"docker_repository,omitempty" gorm:"type:varchar(255)"`
	Icon             string    `json:"icon,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Source is a configured source connector instance.
// @Description Source is a source connector instance belonging to a workspace.
type Source struct {
	ID                 string    `json:"source_id" gorm:"type:varchar(64);primaryKey"`
	WorkspaceID        string    `json:"workspace_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_source_ws_name"`
	Name               string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_source_ws_name"`
	SourceDefinitionID string    `json:"source_definition_id" gorm:"type:varchar(64);not null"`
	SourceName         string    `json:"source_name,omitempty" gorm:"type:varchar(255)"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Destination is a configured destination connector instance.
// @Description Destination is a destination connector instance belonging to a workspace.
type Destination struct {
	ID                      string    `json:"destination_id" gorm:"type:varchar(64);primaryKey"`
	WorkspaceID             string    `json:"workspace_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_destination_ws_name"`
	Name                    string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_destination_ws_name"`
	DestinationDefinitionID string    `json:"destination_definition_id" gorm:"type:varchar(64);not null"`
	DestinationName         string    `json:"destination_name,omitempty" gorm:"type:varchar(255)"`
	CreatedAt               time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt               time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Connection pairs exactly one source with one destination.
// @Description Connection is a configured data sync between a source and a destination.
type Connection struct {
	ID            string           `json:"connection_id" gorm:"type:varchar(64);primaryKey"`
	WorkspaceID   string           `json:"workspace_id" gorm:"type:varchar(64);not null;index"`
	Name          string           `json:"name,omitempty" gorm:"type:varchar(255)"`
	SourceID      string           `json:"source_id" gorm:"type:varchar(64);not null;index"`
	DestinationID string           `json:"destination_id" gorm:"type:varchar(64);not null;index"`
	Status        ConnectionStatus `json:"status" gorm:"type:varchar(32);not null;default:active"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// CreateWorkspaceRequest defines the request payload for creating a workspace.
type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// CreateDefinitionRequest defines the request payload for creating a source or destination definition.
type CreateDefinitionRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=255"`
	DockerRepository string `json:"docker_repository,omitempty" binding:"max=255"`
	Icon             string `json:"icon,omitempty"`
}

// CreateSourceRequest defines the request payload for creating a source.
type CreateSourceRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=255"`
	SourceDefinitionID string `json:"source_definition_id" binding:"required"`
}

// CreateDestinationRequest defines the request payload for creating a destination.
type CreateDestinationRequest struct {
	Name                    string `json:"name" binding:"required,min=1,max=255"`
	DestinationDefinitionID string `json:"destination_definition_id" binding:"required"`
}

// CreateConnectionRequest defines the request payload for creating a connection.
type CreateConnectionRequest struct {
	Name          string `json:"name,omitempty" binding:"max=255"`
	SourceID      string `json:"source_id" binding:"required"`
	DestinationID string `json:"destination_id" binding:"required"`
	Status        string `json:"status,omitempty" binding:"omitempty,oneof=active inactive deprecated"`
}
