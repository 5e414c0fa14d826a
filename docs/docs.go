// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/workspaces/{workspace_id}/sources": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Sources table",
                "parameters": [
                    {"type": "string", "name": "workspace_id", "in": "path", "required": true},
                    {"type": "string", "name": "sort_by", "in": "query"},
                    {"type": "string", "name": "sort_order", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/workspaces/{workspace_id}/destinations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Destinations table",
                "parameters": [
                    {"type": "string", "name": "workspace_id", "in": "path", "required": true},
                    {"type": "string", "name": "sort_by", "in": "query"},
                    {"type": "string", "name": "sort_order", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/workspaces/{workspace_id}/sources/{source_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Source detail page",
                "parameters": [
                    {"type": "string", "name": "workspace_id", "in": "path", "required": true},
                    {"type": "string", "name": "source_id", "in": "path", "required": true},
                    {"type": "string", "name": "step", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/workspaces/{workspace_id}/navigation/row-click": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Navigate to the detail page of a table row",
                "parameters": [
                    {"type": "string", "name": "workspace_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/workspaces/{workspace_id}/sources/{source_id}/destination-select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Handle a destination dropdown selection",
                "parameters": [
                    {"type": "string", "name": "workspace_id", "in": "path", "required": true},
                    {"type": "string", "name": "source_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Connector Console API",
	Description:      "Read models for the sources and destinations pages of a workspace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
