package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"

	"github.com/IamTheLime/airbyte/internal/models"
)

// newTestStore opens an isolated in-memory SQLite database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewStore(db)
}

type seeded struct {
	workspace models.Workspace
	srcDef    models.SourceDefinition
	dstDef    models.DestinationDefinition
	source    models.Source
	dest      models.Destination
}

func seed(t *testing.T, s *Store) seeded {
	t.Helper()
	ctx := context.Background()
	ws, err := s.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "default"})
	require.NoError(t, err)
	srcDef, err := s.CreateSourceDefinition(ctx, ws.ID, models.CreateDefinitionRequest{Name: "Postgres", Icon: "pg.svg"})
	require.NoError(t, err)
	dstDef, err := s.CreateDestinationDefinition(ctx, ws.ID, models.CreateDefinitionRequest{Name: "Snowflake"})
	require.NoError(t, err)
	src, err := s.CreateSource(ctx, ws.ID, models.CreateSourceRequest{Name: "orders-db", SourceDefinitionID: srcDef.ID})
	require.NoError(t, err)
	dst, err := s.CreateDestination(ctx, ws.ID, models.CreateDestinationRequest{Name: "warehouse", DestinationDefinitionID: dstDef.ID})
	require.NoError(t, err)
	return seeded{workspace: ws, srcDef: srcDef, dstDef: dstDef, source: src, dest: dst}
}

func TestStore_Workspace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ws, err := s.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "default"})
	require.NoError(t, err)
	assert.NotEmpty(t, ws.ID)

	got, err := s.GetWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "default", got.Name)

	_, err = s.GetWorkspace(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "default"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_Sources(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	data := seed(t, s)

	assert.Equal(t, "Postgres", data.source.SourceName)

	t.Run("Duplicate name in workspace", func(t *testing.T) {
		_, err := s.CreateSource(ctx, data.workspace.ID, models.CreateSourceRequest{Name: "orders-db", SourceDefinitionID: data.srcDef.ID})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Unknown definition", func(t *testing.T) {
		_, err := s.CreateSource(ctx, data.workspace.ID, models.CreateSourceRequest{Name: "x", SourceDefinitionID: "nope"})
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("Definition of another workspace", func(t *testing.T) {
		other, err := s.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "other"})
		require.NoError(t, err)
		_, err = s.CreateSource(ctx, other.ID, models.CreateSourceRequest{Name: "x", SourceDefinitionID: data.srcDef.ID})
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("List in creation order", func(t *testing.T) {
		second, err := s.CreateSource(ctx, data.workspace.ID, models.CreateSourceRequest{Name: "billing-db", SourceDefinitionID: data.srcDef.ID})
		require.NoError(t, err)

		sources, err := s.ListSources(ctx, data.workspace.ID)
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, data.source.ID, sources[0].ID)
		assert.Equal(t, second.ID, sources[1].ID)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := s.GetSource(ctx, data.workspace.ID, data.source.ID)
		require.NoError(t, err)
		assert.Equal(t, "orders-db", got.Name)

		_, err = s.GetSource(ctx, "other-ws", data.source.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Connections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	data := seed(t, s)

	conn, err := s.CreateConnection(ctx, data.workspace.ID, models.CreateConnectionRequest{
		SourceID:      data.source.ID,
		DestinationID: data.dest.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusActive, conn.Status)
	assert.Equal(t, "orders-db -> warehouse", conn.Name)

	_, err = s.CreateConnection(ctx, data.workspace.ID, models.CreateConnectionRequest{
		SourceID:      data.source.ID,
		DestinationID: data.dest.ID,
		Status:        "inactive",
	})
	require.NoError(t, err)

	connections, err := s.ListConnections(ctx, data.workspace.ID)
	require.NoError(t, err)
	require.Len(t, connections, 2)
	assert.Equal(t, models.ConnectionStatusInactive, connections[1].Status)

	t.Run("Unknown destination", func(t *testing.T) {
		_, err := s.CreateConnection(ctx, data.workspace.ID, models.CreateConnectionRequest{SourceID: data.source.ID, DestinationID: "nope"})
		assert.ErrorIs(t, err, ErrForeignKey)
		assert.Contains(t, err.Error(), "destination_id")
	})

	t.Run("Invalid status", func(t *testing.T) {
		_, err := s.CreateConnection(ctx, data.workspace.ID, models.CreateConnectionRequest{
			SourceID: data.source.ID, DestinationID: data.dest.ID, Status: "paused",
		})
		assert.ErrorIs(t, err, ErrStatus)
	})

	t.Run("Empty workspace lists are empty not nil", func(t *testing.T) {
		list, err := s.ListConnections(ctx, "empty")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestStore_Definitions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	data := seed(t, s)

	srcDefs, err := s.ListSourceDefinitions(ctx, data.workspace.ID)
	require.NoError(t, err)
	require.Len(t, srcDefs, 1)
	assert.Equal(t, "pg.svg", srcDefs[0].Icon)

	dstDefs, err := s.ListDestinationDefinitions(ctx, data.workspace.ID)
	require.NoError(t, err)
	require.Len(t, dstDefs, 1)
	assert.Equal(t, "", dstDefs[0].Icon)

	destinations, err := s.ListDestinations(ctx, data.workspace.ID)
	require.NoError(t, err)
	require.Len(t, destinations, 1)
	assert.Equal(t, "Snowflake", destinations[0].DestinationName)

	got, err := s.GetDestination(ctx, data.workspace.ID, data.dest.ID)
	require.NoError(t, err)
	assert.Equal(t, "warehouse", got.Name)
	_, err = s.GetDestination(ctx, data.workspace.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// newMockStore runs the store against the PostgreSQL dialect.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)
	return NewStore(db), mock
}

func TestStore_PostgresUniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "workspaces"`)).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	_, err := s.CreateWorkspace(context.Background(), models.CreateWorkspaceRequest{Name: "default"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_PostgresListFailure(t *testing.T) {
	s, mock := newMockStore(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "connections" WHERE workspace_id = $1`)).
		WithArgs("ws1").
		WillReturnError(dbErr)

	list, err := s.ListConnections(context.Background(), "ws1")
	assert.Nil(t, list)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_PostgresList(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "workspace_id", "name", "source_definition_id", "source_name"}).
		AddRow("s1", "ws1", "orders-db", "d1", "Postgres").
		AddRow("s2", "ws1", "billing-db", "d1", "Postgres")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sources" WHERE workspace_id = $1 ORDER BY created_at, id`)).
		WithArgs("ws1").
		WillReturnRows(rows)

	sources, err := s.ListSources(context.Background(), "ws1")
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "s2", sources[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}
