package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/IamTheLime/airbyte/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record with this name already exists")
	ErrForeignKey = errors.New("referenced record not found")
	ErrStatus     = errors.New("invalid connection status")
)

// Store persists workspaces and their connector records.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- Workspace Methods ---

func (s *Store) CreateWorkspace(ctx context.Context, req models.CreateWorkspaceRequest) (models.Workspace, error) {
	ws := models.Workspace{ID: uuid.New().String(), Name: req.Name}
	if err := s.db.WithContext(ctx).Create(&ws).Error; err != nil {
		return models.Workspace{}, translate(err, "workspace")
	}
	return ws, nil
}

func (s *Store) GetWorkspace(ctx context.Context, id string) (models.Workspace, error) {
	var ws models.Workspace
	if err := s.db.WithContext(ctx).First(&ws, "id = ?", id).Error; err != nil {
		return models.Workspace{}, translate(err, "workspace")
	}
	return ws, nil
}

// --- Definition Methods ---

func (s *Store) CreateSourceDefinition(ctx context.Context, workspaceID string, req models.CreateDefinitionRequest) (models.SourceDefinition, error) {
	def := models.SourceDefinition{
		ID:               uuid.New().String(),
		WorkspaceID:      workspaceID,
		Name:             req.Name,
		DockerRepository: req.DockerRepository,
		Icon:             req.Icon,
	}
	if err := s.db.WithContext(ctx).Create(&def).Error; err != nil {
		return models.SourceDefinition{}, translate(err, "source definition")
	}
	return def, nil
}

func (s *Store) ListSourceDefinitions(ctx context.Context, workspaceID string) ([]models.SourceDefinition, error) {
	defs := []models.SourceDefinition{}
	if err := s.scoped(ctx, workspaceID).Find(&defs).Error; err != nil {
		return nil, fmt.Errorf("failed to list source definitions: %w", err)
	}
	return defs, nil
}

func (s *Store) CreateDestinationDefinition(ctx context.Context, workspaceID string, req models.CreateDefinitionRequest) (models.DestinationDefinition, error) {
	def := models.DestinationDefinition{
		ID:               uuid.New().String(),
		WorkspaceID:      workspaceID,
		Name:             req.Name,
		DockerRepository: req.DockerRepository,
		Icon:             req.Icon,
	}
	if err := s.db.WithContext(ctx).Create(&def).Error; err != nil {
		return models.DestinationDefinition{}, translate(err, "destination definition")
	}
	return def, nil
}

func (s *Store) ListDestinationDefinitions(ctx context.Context, workspaceID string) ([]models.DestinationDefinition, error) {
	defs := []models.DestinationDefinition{}
	if err := s.scoped(ctx, workspaceID).Find(&defs).Error; err != nil {
		return nil, fmt.Errorf("failed to list destination definitions: %w", err)
	}
	return defs, nil
}

// --- Source Methods ---

// CreateSource stores a source after checking its definition exists in the workspace.
func (s *Store) CreateSource(ctx context.Context, workspaceID string, req models.CreateSourceRequest) (models.Source, error) {
	var def models.SourceDefinition
	if err := s.scoped(ctx, workspaceID).First(&def, "id = ?", req.SourceDefinitionID).Error; err != nil {
		return models.Source{}, foreignKey(err, "source_definition_id", req.SourceDefinitionID)
	}

	src := models.Source{
		ID:                 uuid.New().String(),
		WorkspaceID:        workspaceID,
		Name:               req.Name,
		SourceDefinitionID: def.ID,
		SourceName:         def.Name,
	}
	if err := s.db.WithContext(ctx).Create(&src).Error; err != nil {
		return models.Source{}, translate(err, "source")
	}
	return src, nil
}

func (s *Store) GetSource(ctx context.Context, workspaceID, id string) (models.Source, error) {
	var src models.Source
	if err := s.scoped(ctx, workspaceID).First(&src, "id = ?", id).Error; err != nil {
		return models.Source{}, translate(err, "source")
	}
	return src, nil
}

func (s *Store) ListSources(ctx context.Context, workspaceID string) ([]models.Source, error) {
	sources := []models.Source{}
	if err := s.scoped(ctx, workspaceID).Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return sources, nil
}

// --- Destination Methods ---

// CreateDestination stores a destination after checking its definition exists in the workspace.
func (s *Store) CreateDestination(ctx context.Context, workspaceID string, req models.CreateDestinationRequest) (models.Destination, error) {
	var def models.DestinationDefinition
	if err := s.scoped(ctx, workspaceID).First(&def, "id = ?", req.DestinationDefinitionID).Error; err != nil {
		return models.Destination{}, foreignKey(err, "destination_definition_id", req.DestinationDefinitionID)
	}

	dst := models.Destination{
		ID:                      uuid.New().String(),
		WorkspaceID:             workspaceID,
		Name:                    req.Name,
		DestinationDefinitionID: def.ID,
		DestinationName:         def.Name,
	}
	if err := s.db.WithContext(ctx).Create(&dst).Error; err != nil {
		return models.Destination{}, translate(err, "destination")
	}
	return dst, nil
}

func (s *Store) GetDestination(ctx context.Context, workspaceID, id string) (models.Destination, error) {
	var dst models.Destination
	if err := s.scoped(ctx, workspaceID).First(&dst, "id = ?", id).Error; err != nil {
		return models.Destination{}, translate(err, "destination")
	}
	return dst, nil
}

func (s *Store) ListDestinations(ctx context.Context, workspaceID string) ([]models.Destination, error) {
	destinations := []models.Destination{}
	if err := s.scoped(ctx, workspaceID).Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return destinations, nil
}

// --- Connection Methods ---

// CreateConnection stores a connection between a source and a destination of
// the same workspace. An empty status defaults to active.
func (s *Store) CreateConnection(ctx context.Context, workspaceID string, req models.CreateConnectionRequest) (models.Connection, error) {
	status := models.ConnectionStatusActive
	if req.Status != "" {
		status = models.ConnectionStatus(req.Status)
	}
	if !models.ValidConnectionStatuses[status] {
		return models.Connection{}, fmt.Errorf("%q: %w", req.Status, ErrStatus)
	}

	var src models.Source
	if err := s.scoped(ctx, workspaceID).First(&src, "id = ?", req.SourceID).Error; err != nil {
		return models.Connection{}, foreignKey(err, "source_id", req.SourceID)
	}
	var dst models.Destination
	if err := s.scoped(ctx, workspaceID).First(&dst, "id = ?", req.DestinationID).Error; err != nil {
		return models.Connection{}, foreignKey(err, "destination_id", req.DestinationID)
	}

	conn := models.Connection{
		ID:            uuid.New().String(),
		WorkspaceID:   workspaceID,
		Name:          req.Name,
		SourceID:      src.ID,
		DestinationID: dst.ID,
		Status:        status,
	}
	if conn.Name == "" {
		conn.Name = src.Name + " -> " + dst.Name
	}
	if err := s.db.WithContext(ctx).Create(&conn).Error; err != nil {
		return models.Connection{}, translate(err, "connection")
	}
	return conn, nil
}

func (s *Store) ListConnections(ctx context.Context, workspaceID string) ([]models.Connection, error) {
	connections := []models.Connection{}
	if err := s.scoped(ctx, workspaceID).Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return connections, nil
}

// scoped restricts a query to one workspace in creation order.
func (s *Store) scoped(ctx context.Context, workspaceID string) *gorm.DB {
	return s.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("created_at, id")
}

func translate(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	default:
		return fmt.Errorf("failed to persist %s: %w", what, err)
	}
}

func foreignKey(err error, field, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", field, id, ErrForeignKey)
	}
	return fmt.Errorf("failed to resolve %s: %w", field, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
