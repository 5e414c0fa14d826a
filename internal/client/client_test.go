package client

import (
	"context"
	"errors"
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

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/workspaces/:workspace_id/sources", func(c *gin.Context) {
		if c.Query("sort_by") == "bogus" {
			c.JSON(http.StatusBadRequest, models.APIError{Code: models.ErrorCodeValidation, Message: "Invalid sort_by field."})
			return
		}
		c.JSON(http.StatusOK, []projection.TableRow{{EntityID: "s1", Name: c.Query("sort_order"), ConnectionCount: 2}})
	})
	router.GET("/api/v1/workspaces/:workspace_id/destinations", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})
	router.GET("/api/v1/workspaces/:workspace_id/sources/:source_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, handlers.SourceItemPage{
			CurrentStep: tabs.Step(c.Query("step")),
			Breadcrumbs: []handlers.Breadcrumb{{Name: "Sources", Route: "/source"}, {Name: c.Param("source_id")}},
		})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	t.Run("Sources table", func(t *testing.T) {
		rows, err := c.ListSources(ctx, "ws1", "name", "desc")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "desc", rows[0].Name)
		assert.Equal(t, 2, rows[0].ConnectionCount)
	})

	t.Run("API error is decoded", func(t *testing.T) {
		_, err := c.ListSources(ctx, "ws1", "bogus", "")
		var apiErr *models.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, models.ErrorCodeValidation, apiErr.Code)
	})

	t.Run("Plain error body", func(t *testing.T) {
		_, err := c.ListDestinations(ctx, "ws1", "", "")
		assert.ErrorContains(t, err, "status 500")
	})

	t.Run("Source page", func(t *testing.T) {
		page, err := c.SourcePage(ctx, "ws1", "s1", "SETTINGS")
		require.NoError(t, err)
		assert.Equal(t, tabs.Settings, page.CurrentStep)
		assert.Equal(t, "s1", page.Breadcrumbs[1].Name)
	})
}
