package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/navigation"
	"github.com/IamTheLime/airbyte/internal/projection"
	"github.com/IamTheLime/airbyte/internal/resources"
)

// RecordStore is the data layer behind the API.
type RecordStore interface {
	CreateWorkspace(ctx context.Context, req models.CreateWorkspaceRequest) (models.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (models.Workspace, error)
	CreateSourceDefinition(ctx context.Context, workspaceID string, req models.CreateDefinitionRequest) (models.SourceDefinition, error)
	ListSourceDefinitions(ctx context.Context, workspaceID string) ([]models.SourceDefinition, error)
	CreateDestinationDefinition(ctx context.Context, workspaceID string, req models.CreateDefinitionRequest) (models.DestinationDefinition, error)
	ListDestinationDefinitions(ctx context.Context, workspaceID string) ([]models.DestinationDefinition, error)
	CreateSource(ctx context.Context, workspaceID string, req models.CreateSourceRequest) (models.Source, error)
	GetSource(ctx context.Context, workspaceID, id string) (models.Source, error)
	CreateDestination(ctx context.Context, workspaceID string, req models.CreateDestinationRequest) (models.Destination, error)
	GetDestination(ctx context.Context, workspaceID, id string) (models.Destination, error)
	CreateConnection(ctx context.Context, workspaceID string, req models.CreateConnectionRequest) (models.Connection, error)
	ListConnections(ctx context.Context, workspaceID string) ([]models.Connection, error)
}

// API serves the console pages and the records they are built from.
type API struct {
	store     RecordStore
	loader    *resources.Loader
	cache     *projection.Cache
	publisher navigation.Publisher
}

// NewAPI creates an API. Pages read through loader; writes go to store.
func NewAPI(store RecordStore, loader *resources.Loader, cache *projection.Cache, publisher navigation.Publisher) *API {
	return &API{
		store:     store,
		loader:    loader,
		cache:     cache,
		publisher: publisher,
	}
}

// RegisterRoutes registers the console API routes with the given Gin router.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/workspaces", a.CreateWorkspace)
	v1.GET("/workspaces/:workspace_id", a.GetWorkspace)

	ws := v1.Group("/workspaces/:workspace_id", a.requireWorkspace)
	{
		// Pages
		ws.GET("/sources", a.ListSourcesPage)
		ws.GET("/sources/:source_id", a.SourceItemPage)
		ws.GET("/destinations", a.ListDestinationsPage)

		// Navigation
		ws.POST("/navigation/row-click", a.RowClick)
		ws.POST("/sources/:source_id/destination-select", a.SelectDestination)

		// Records
		ws.POST("/sources", a.CreateSource)
		ws.POST("/destinations", a.CreateDestination)
		ws.GET("/connections", a.ListConnections)
		ws.POST("/connections", a.CreateConnection)
		ws.GET("/source-definitions", a.ListSourceDefinitions)
		ws.POST("/source-definitions", a.CreateSourceDefinition)
		ws.GET("/destination-definitions", a.ListDestinationDefinitions)
		ws.POST("/destination-definitions", a.CreateDestinationDefinition)
	}
}

// requireWorkspace rejects requests for unknown workspaces.
func (a *API) requireWorkspace(c *gin.Context) {
	if _, err := a.store.GetWorkspace(c.Request.Context(), c.Param("workspace_id")); err != nil {
		respondStoreError(c, err, models.ErrorCodeWorkspaceNotFound, "Workspace")
		return
	}
	c.Next()
}

// snapshot awaits a consistent snapshot of the workspace. On failure the
// response has been written and ok is false.
func (a *API) snapshot(c *gin.Context) (*resources.Snapshot, bool) {
	ctx := c.Request.Context()
	workspaceID := c.Param("workspace_id")

	res := a.loader.Start(ctx, workspaceID).Await(ctx)
	if res.Status != resources.Resolved {
		var fetchErr *resources.FetchError
		if errors.As(res.Err, &fetchErr) {
			logrus.WithError(fetchErr.Err).WithFields(logrus.Fields{
				"workspace_id": workspaceID,
				"collection":   fetchErr.Collection,
			}).Error("failed to fetch workspace resources")
			RespondWithError(c, http.StatusBadGateway, models.ErrorCodeFetchFailed, "Failed to fetch workspace resources", gin.H{"collection": fetchErr.Collection})
			return nil, false
		}
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to load workspace", nil)
		return nil, false
	}

	snap := res.Value
	if snap.Changed {
		a.cache.PurgeWorkspace(workspaceID)
	}
	return snap, true
}

func memoKey(snap *resources.Snapshot, view, entityID string) projection.MemoKey {
	return projection.MemoKey{
		WorkspaceID: snap.WorkspaceID,
		View:        view,
		EntityID:    entityID,
		Generation:  snap.Generation,
	}
}
