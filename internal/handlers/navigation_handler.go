package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/navigation"
	"github.com/IamTheLime/airbyte/internal/projection"
)

// RowClickRequest is the payload of a table row click.
type RowClickRequest struct {
	Kind     string `json:"kind" binding:"required"`
	EntityID string `json:"entity_id" binding:"required"`
}

// DestinationSelectRequest is the payload of a destination dropdown selection.
type DestinationSelectRequest struct {
	Value string `json:"value" binding:"required"`
}

// RowClick godoc
// @Summary Open a table row
// @Description Resolve a click on a sources or destinations table row into the route of its detail page.
// @Tags navigation
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string           true  "Workspace ID"
// @Param   click         body  RowClickRequest  true  "Clicked row"
// @Success 200 {object} navigation.Request
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR, INVALID_ENUM_VALUE)"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /workspaces/{workspace_id}/navigation/row-click [post]
func (a *API) RowClick(c *gin.Context) {
	var req RowClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	kind := projection.Kind(req.Kind)
	if !kind.Valid() {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidEnumValue, "Invalid kind.", gin.H{"kind": req.Kind, "allowed": []projection.Kind{projection.KindSource, projection.KindDestination}})
		return
	}

	nav, err := navigation.RowClick(c.Param("workspace_id"), kind, req.EntityID)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, err.Error(), nil)
		return
	}
	a.publish(c, nav)
}

// SelectDestination godoc
// @Summary Pick a destination for a source
// @Description Resolve a destination dropdown selection into the connection-creation route. The create-new-item value routes without a destination.
// @Tags navigation
// @Accept  json
// @Produce  json
// @Param   workspace_id  path  string                    true  "Workspace ID"
// @Param   source_id     path  string                    true  "Source ID"
// @Param   selection     body  DestinationSelectRequest  true  "Selected dropdown value"
// @Success 200 {object} navigation.Request
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (SOURCE_NOT_FOUND, DESTINATION_NOT_FOUND)"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /workspaces/{workspace_id}/sources/{source_id}/destination-select [post]
func (a *API) SelectDestination(c *gin.Context) {
	var req DestinationSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	workspaceID := c.Param("workspace_id")
	sourceID := c.Param("source_id")
	if _, err := a.store.GetSource(ctx, workspaceID, sourceID); err != nil {
		respondStoreError(c, err, models.ErrorCodeSourceNotFound, "Source")
		return
	}
	if req.Value != projection.CreateNewItem {
		if _, err := a.store.GetDestination(ctx, workspaceID, req.Value); err != nil {
			respondStoreError(c, err, models.ErrorCodeDestinationNotFound, "Destination")
			return
		}
	}

	nav, err := navigation.SelectDestination(workspaceID, sourceID, req.Value)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, err.Error(), nil)
		return
	}
	a.publish(c, nav)
}

func (a *API) publish(c *gin.Context, nav navigation.Request) {
	if err := a.publisher.Publish(c.Request.Context(), nav); err != nil {
		logrus.WithError(err).WithField("path", nav.Path).Error("failed to publish navigation request")
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to publish navigation request", nil)
		return
	}
	RespondWithSuccess(c, http.StatusOK, nav)
}
