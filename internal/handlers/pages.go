package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/navigation"
	"github.com/IamTheLime/airbyte/internal/projection"
	"github.com/IamTheLime/airbyte/internal/resources"
	"github.com/IamTheLime/airbyte/internal/tabs"
)

const (
	viewSourceTable      = "source-table"
	viewDestinationTable = "destination-table"
	viewSourceLinks      = "source-connections"
	viewDestinationMenu  = "destination-options"
)

// Breadcrumb is one element of the page trail.
type Breadcrumb struct {
	Name  string `json:"name"`
	Route string `json:"route,omitempty"`
}

// SourceItemPage is the view model of a source detail page.
// @Description SourceItemPage carries everything the source detail page renders for the selected step.
type SourceItemPage struct {
	Source             models.Source               `json:"source"`
	DefinitionName     string                      `json:"definition_name"`
	Icon               string                      `json:"icon,omitempty"`
	Breadcrumbs        []Breadcrumb                `json:"breadcrumbs"`
	Steps              []tabs.Step                 `json:"steps"`
	CurrentStep        tabs.Step                   `json:"current_step"`
	Connections        []projection.Connection     `json:"connections"`
	DestinationOptions []projection.DropdownOption `json:"destination_options,omitempty"`
	Placeholder        bool                        `json:"placeholder"`
}

// ListSourcesPage godoc
// @Summary Sources table
// @Description Project every source of the workspace into a table row.
// @Tags pages
// @Produce  json
// @Param   workspace_id  path   string  true   "Workspace ID"
// @Param   sort_by       query  string  false  "name, definition_name or connection_count"
// @Param   sort_order    query  string  false  "asc or desc"
// @Success 200 {array} projection.TableRow
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Failure 502 {object} models.APIError "Bad Gateway (FETCH_FAILED)"
// @Router /workspaces/{workspace_id}/sources [get]
func (a *API) ListSourcesPage(c *gin.Context) {
	a.tablePage(c, projection.KindSource)
}

// ListDestinationsPage godoc
// @Summary Destinations table
// @Description Project every destination of the workspace into a table row.
// @Tags pages
// @Produce  json
// @Param   workspace_id  path   string  true   "Workspace ID"
// @Param   sort_by       query  string  false  "name, definition_name or connection_count"
// @Param   sort_order    query  string  false  "asc or desc"
// @Success 200 {array} projection.TableRow
// @Failure 400 {object} models.APIError "Bad Request (VALIDATION_ERROR)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND)"
// @Failure 502 {object} models.APIError "Bad Gateway (FETCH_FAILED)"
// @Router /workspaces/{workspace_id}/destinations [get]
func (a *API) ListDestinationsPage(c *gin.Context) {
	a.tablePage(c, projection.KindDestination)
}

func (a *API) tablePage(c *gin.Context, kind projection.Kind) {
	sortBy := c.Query("sort_by")
	if sortBy != "" && !projection.AllowedSortByFields[sortBy] {
		allowed := make([]string, 0, len(projection.AllowedSortByFields))
		for k := range projection.AllowedSortByFields {
			allowed = append(allowed, k)
		}
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid sort_by field.", gin.H{"field": sortBy, "allowed": allowed})
		return
	}
	sortOrder := strings.ToLower(c.DefaultQuery("sort_order", "asc"))
	if sortOrder != "asc" && sortOrder != "desc" {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid sort_order value. Must be 'asc' or 'desc'.", gin.H{"value": c.Query("sort_order")})
		return
	}

	snap, ok := a.snapshot(c)
	if !ok {
		return
	}

	rows := a.table(snap, kind)
	if sortBy != "" {
		sorted, err := projection.SortRows(rows, sortBy, sortOrder)
		if err != nil {
			RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, err.Error(), nil)
			return
		}
		rows = sorted
	}
	RespondWithSuccess(c, http.StatusOK, rows)
}

func (a *API) table(snap *resources.Snapshot, kind projection.Kind) []projection.TableRow {
	if kind == projection.KindDestination {
		return a.cache.Tables.Get(memoKey(snap, viewDestinationTable, ""), func() []projection.TableRow {
			return projection.ProjectTable(snap.DestinationEntities(), snap.ConnectionRefs(), snap.DestinationDefinitionRefs(), kind)
		})
	}
	return a.cache.Tables.Get(memoKey(snap, viewSourceTable, ""), func() []projection.TableRow {
		return projection.ProjectTable(snap.SourceEntities(), snap.ConnectionRefs(), snap.SourceDefinitionRefs(), kind)
	})
}

// SourceItemPage godoc
// @Summary Source detail page
// @Description Build the detail page of one source for the selected step.
// @Tags pages
// @Produce  json
// @Param   workspace_id  path   string  true   "Workspace ID"
// @Param   source_id     path   string  true   "Source ID"
// @Param   step          query  string  false  "overview (default) or settings"
// @Success 200 {object} SourceItemPage
// @Failure 400 {object} models.APIError "Bad Request (INVALID_ENUM_VALUE)"
// @Failure 404 {object} models.APIError "Not Found (WORKSPACE_NOT_FOUND, SOURCE_NOT_FOUND)"
// @Failure 502 {object} models.APIError "Bad Gateway (FETCH_FAILED)"
// @Router /workspaces/{workspace_id}/sources/{source_id} [get]
func (a *API) SourceItemPage(c *gin.Context) {
	sourceID := c.Param("source_id")

	machine := tabs.New()
	machine.Mount(sourceID)
	step, err := machine.Parse(c.Query("step"))
	if err == nil {
		err = machine.Select(step)
	}
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidEnumValue, "Invalid step.", gin.H{"step": c.Query("step"), "allowed": machine.Steps()})
		return
	}

	snap, ok := a.snapshot(c)
	if !ok {
		return
	}
	source, found := snap.FindSource(sourceID)
	if !found {
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeSourceNotFound, "Source not found", gin.H{"source_id": sourceID})
		return
	}

	// A single-entity projection resolves the definition the same way the table does.
	row := projection.ProjectTable(
		[]projection.Entity{{ID: source.ID, Name: source.Name, DefinitionID: source.SourceDefinitionID}},
		nil, snap.SourceDefinitionRefs(), projection.KindSource,
	)[0]

	page := SourceItemPage{
		Source:         source,
		DefinitionName: row.DefinitionName,
		Icon:           row.Icon,
		Breadcrumbs: []Breadcrumb{
			{Name: "Sources", Route: navigation.RouteSource},
			{Name: source.Name},
		},
		Steps:       machine.Steps(),
		CurrentStep: machine.Current(),
		Connections: a.cache.Connections.Get(memoKey(snap, viewSourceLinks, sourceID), func() []projection.Connection {
			return projection.ConnectionsFor(sourceID, snap.ConnectionRefs(), projection.KindSource)
		}),
	}

	if page.CurrentStep == tabs.Overview {
		page.DestinationOptions = a.cache.Options.Get(memoKey(snap, viewDestinationMenu, ""), func() []projection.DropdownOption {
			return projection.ProjectDropdown(snap.DestinationEntities(), snap.DestinationDefinitionRefs())
		})
		page.Placeholder = len(page.Connections) == 0
	}

	RespondWithSuccess(c, http.StatusOK, page)
}
