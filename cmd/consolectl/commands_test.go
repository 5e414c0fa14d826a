package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamTheLime/airbyte/internal/handlers"
	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/projection"
	"github.com/IamTheLime/airbyte/internal/tabs"
)

func newConsoleServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/workspaces/:workspace_id/sources", func(c *gin.Context) {
		c.JSON(http.StatusOK, []projection.TableRow{
			{EntityID: "s1", Name: "Orders DB", DefinitionName: "Postgres", ConnectionCount: 2, Enabled: true},
		})
	})
	router.GET("/api/v1/workspaces/:workspace_id/destinations", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.APIError{Code: models.ErrorCodeWorkspaceNotFound, Message: "Workspace not found."})
	})
	router.GET("/api/v1/workspaces/:workspace_id/sources/:source_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, handlers.SourceItemPage{
			DefinitionName: "Postgres",
			CurrentStep:    tabs.Overview,
			Breadcrumbs:    []handlers.Breadcrumb{{Name: "Sources", Route: "/source"}, {Name: "Orders DB"}},
			Connections:    []projection.Connection{{ID: "c1", SourceID: "s1", DestinationID: "d1", Status: "active"}},
			DestinationOptions: []projection.DropdownOption{
				{Label: "Create new", Value: projection.CreateNewItem},
				{Label: "Warehouse", Value: "d1"},
			},
		})
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSourcesList(t *testing.T) {
	srv := newConsoleServer(t)

	out, err := execute(t, "--server", srv.URL, "--workspace", "ws1", "sources", "list", "--sort-by", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Orders DB")
	assert.Contains(t, out, "Postgres")
	assert.Contains(t, out, "true")
}

func TestDestinationsList_APIError(t *testing.T) {
	srv := newConsoleServer(t)

	_, err := execute(t, "--server", srv.URL, "--workspace", "ws1", "destinations", "list")
	assert.ErrorContains(t, err, "Workspace not found.")
}

func TestSourcesShow(t *testing.T) {
	srv := newConsoleServer(t)

	out, err := execute(t, "--server", srv.URL, "--workspace", "ws1", "sources", "show", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sources / Orders DB")
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "Warehouse (d1)")
}

func TestWorkspaceRequired(t *testing.T) {
	_, err := execute(t, "--workspace", "", "sources", "list")
	assert.ErrorContains(t, err, "--workspace is required")

	_, err = execute(t, "--workspace", "ws1", "sources", "show")
	assert.Error(t, err)
}

func TestRenderPage_Placeholder(t *testing.T) {
	var out bytes.Buffer
	err := renderPage(&out, &handlers.SourceItemPage{
		CurrentStep: tabs.Settings,
		Placeholder: true,
		Breadcrumbs: []handlers.Breadcrumb{{Name: "Sources"}, {Name: "Empty"}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No connections yet.")
	assert.NotContains(t, out.String(), "Add destination")
}
