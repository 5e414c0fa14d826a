// Package client talks to the console API over HTTP.
package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/IamTheLime/airbyte/internal/handlers"
	"github.com/IamTheLime/airbyte/internal/models"
	"github.com/IamTheLime/airbyte/internal/projection"
)

// Client reads console pages of one server.
type Client struct {
	http *resty.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{http: c}
}

// ListSources fetches the sources table, optionally sorted.
func (c *Client) ListSources(ctx context.Context, workspaceID, sortBy, sortOrder string) ([]projection.TableRow, error) {
	return c.table(ctx, workspaceID, "sources", sortBy, sortOrder)
}

// ListDestinations fetches the destinations table, optionally sorted.
func (c *Client) ListDestinations(ctx context.Context, workspaceID, sortBy, sortOrder string) ([]projection.TableRow, error) {
	return c.table(ctx, workspaceID, "destinations", sortBy, sortOrder)
}

// SourcePage fetches the detail page of a source for step.
func (c *Client) SourcePage(ctx context.Context, workspaceID, sourceID, step string) (*handlers.SourceItemPage, error) {
	var page handlers.SourceItemPage
	req := c.http.R().SetContext(ctx).SetResult(&page)
	if step != "" {
		req.SetQueryParam("step", step)
	}
	path := fmt.Sprintf("/api/v1/workspaces/%s/sources/%s", url.PathEscape(workspaceID), url.PathEscape(sourceID))
	if err := do(req, path); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) table(ctx context.Context, workspaceID, view, sortBy, sortOrder string) ([]projection.TableRow, error) {
	var rows []projection.TableRow
	req := c.http.R().SetContext(ctx).SetResult(&rows)
	if sortBy != "" {
		req.SetQueryParam("sort_by", sortBy)
	}
	if sortOrder != "" {
		req.SetQueryParam("sort_order", sortOrder)
	}
	path := fmt.Sprintf("/api/v1/workspaces/%s/%s", url.PathEscape(workspaceID), view)
	if err := do(req, path); err != nil {
		return nil, err
	}
	return rows, nil
}

// do issues a GET and turns error responses into *models.APIError.
func do(req *resty.Request, path string) error {
	apiErr := &models.APIError{}
	resp, err := req.SetError(apiErr).Get(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	if resp.IsError() {
		if apiErr.Code == "" {
			return fmt.Errorf("request to %s failed with status %d: %s", path, resp.StatusCode(), resp.String())
		}
		return apiErr
	}
	return nil
}
