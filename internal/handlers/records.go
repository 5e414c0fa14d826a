package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IamTheLime/airbyte/internal/models"
)

// CreateWorkspace godoc
// @Summary Create a workspace
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace  body  models.CreateWorkspaceRequest  true  "Workspace to create"
// @Success 201 {object} models.Workspace
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR, INVALID_JSON)"
// @Failure 409 {object} models.APIError "Conflict (DUPLICATE_NAME)"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /workspaces [post]
func (a *API) CreateWorkspace(c *gin.Context) {
	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ws, err := a.store.CreateWorkspace(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeWorkspaceNotFound, "Workspace")
		return
	}
	RespondWithSuccess(c, http.StatusCreated, ws)
}

// GetWorkspace godoc
// @Summary Get a workspace
// @Tags workspaces
// @Produce  json
// @Param   workspace_id  path  string  true  "Workspace ID"
// @Success 200 {object} models.Workspace
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Router /workspaces/{workspace_id} [get]
func (a *API) GetWorkspace(c *gin.Context) {
	ws, err := a.store.GetWorkspace(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeWorkspaceNotFound, "Workspace")
		return
	}
	RespondWithSuccess(c, http.StatusOK, ws)
}

// CreateSourceDefinition godoc
// @Summary Register a source definition
// @Tags definitions
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string                          true  "Workspace ID"
// @Param   definition    body  models.CreateDefinitionRequest  true  "Definition to create"
// @Success 201 {object} models.SourceDefinition
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Router /workspaces/{workspace_id}/source-definitions [post]
func (a *API) CreateSourceDefinition(c *gin.Context) {
	var req models.CreateDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	def, err := a.store.CreateSourceDefinition(c.Request.Context(), c.Param("workspace_id"), req)
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeNotFound, "Source definition")
		return
	}
	RespondWithSuccess(c, http.StatusCreated, def)
}

// ListSourceDefinitions godoc
// @Summary List source definitions
// @Tags definitions
// @Produce  json
// @Param   workspace_id  path  string  true  "Workspace ID"
// @Success 200 {array} models.SourceDefinition
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Router /workspaces/{workspace_id}/source-definitions [get]
func (a *API) ListSourceDefinitions(c *gin.Context) {
	defs, err := a.store.ListSourceDefinitions(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeNotFound, "Source definitions")
		return
	}
	RespondWithSuccess(c, http.StatusOK, defs)
}

// CreateDestinationDefinition godoc
// @Summary Register a destination definition
// @Tags definitions
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string                          true  "Workspace ID"
// @Param   definition    body  models.CreateDefinitionRequest  true  "Definition to create"
// @Success 201 {object} models.DestinationDefinition
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Router /workspaces/{workspace_id}/destination-definitions [post]
func (a *API) CreateDestinationDefinition(c *gin.Context) {
	var req models.CreateDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	def, err := a.store.CreateDestinationDefinition(c.Request.Context(), c.Param("workspace_id"), req)
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeNotFound, "Destination definition")
		return
	}
	RespondWithSuccess(c, http.StatusCreated, def)
}

// ListDestinationDefinitions godoc
// @Summary List destination definitions
// @Tags definitions
// @Produce  json
// @Param   workspace_id  path  string  true  "Workspace ID"
// @Success 200 {array} models.DestinationDefinition
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Router /workspaces/{workspace_id}/destination-definitions [get]
func (a *API) ListDestinationDefinitions(c *gin.Context) {
	defs, err := a.store.ListDestinationDefinitions(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeNotFound, "Destination definitions")
		return
	}
	RespondWithSuccess(c, http.StatusOK, defs)
}

// CreateSource godoc
// @Summary Create a source
// @Tags sources
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string                      true  "Workspace ID"
// @Param   source        body  models.CreateSourceRequest  true  "Source to create"
// @Success 201 {object} models.Source
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND, FOREIGN_KEY_NOT_FOUND)"
// @Failure 409 {object} models.APIError "Conflict (DUPLICATE_NAME)"
// @Router /workspaces/{workspace_id}/sources [post]
func (a *API) CreateSource(c *gin.Context) {
	var req models.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	src, err := a.store.CreateSource(c.Request.Context(), c.Param("workspace_id"), req)
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeSourceNotFound, "Source")
		return
	}
	RespondWithSuccess(c, http.StatusCreated, src)
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags destinations
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string                           true  "Workspace ID"
// @Param   destination   body  models.CreateDestinationRequest  true  "Destination to create"
// @Success 201 {object} models.Destination
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND, FOREIGN_KEY_NOT_FOUND)"
// @Failure 409 {object} models.APIError "Conflict (DUPLICATE_NAME)"
// @Router /workspaces/{workspace_id}/destinations [post]
func (a *API) CreateDestination(c *gin.Context) {
	var req models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	dst, err := a.store.CreateDestination(c.Request.Context(), c.Param("workspace_id"), req)
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeDestinationNotFound, "Destination")
		return
	}
	RespondWithSuccess(c, http.StatusCreated, dst)
}

// CreateConnection godoc
// @Summary Create a connection
// @Description Connect a source to a destination of the same workspace. Status defaults to active.
// @Tags connections
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string                          true  "Workspace ID"
// @Param   connection    body  models.CreateConnectionRequest  true  "Connection to create"
// @Success 201 {object} models.Connection
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR, INVALID_ENUM_VALUE)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND, FOREIGN_KEY_NOT_FOUND)"
// @Router /workspaces/{workspace_id}/connections [post]
func (a *API) CreateConnection(c *gin.Context) {
	var req models.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	conn, err := a.store.CreateConnection(c.Request.Context(), c.Param("workspace_id"), req)
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeNotFound, "Connection")
		return
	}
	RespondWithSuccess(c, http.StatusCreated, conn)
}

// ListConnections godoc
// @Summary List connections
// @Tags connections
// @Produce  json
// @Param   workspace_id  path  string  true  "Workspace ID"
// @Success 200 {array} models.Connection
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Router /workspaces/{workspace_id}/connections [get]
func (a *API) ListConnections(c *gin.Context) {
	conns, err := a.store.ListConnections(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		respondStoreError(c, err, models.ErrorCodeNotFound, "Connections")
		return
	}
	RespondWithSuccess(c, http.StatusOK, conns)
}
