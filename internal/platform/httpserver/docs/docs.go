// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/auth/login": {
            "post": {
                "summary": "Exchange panel credentials for a session token",
                "tags": ["auth"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {"200": {"description": "token issued"}, "401": {"description": "invalid credentials"}}
            }
        },
        "/api/artworks": {
            "get": {
                "summary": "List artworks visible to the caller",
                "tags": ["artworks"],
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "artworks"}}
            },
            "post": {
                "summary": "Create an artwork",
                "tags": ["artworks"],
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "created"}, "400": {"description": "validation failed"}, "403": {"description": "admin only"}, "409": {"description": "duplicate artwork code"}}
            }
        },
        "/api/artworks/{artwork_id}": {
            "get": {
                "summary": "Get one artwork",
                "tags": ["artworks"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "artwork_id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "artwork"}, "404": {"description": "not found"}}
            },
            "patch": {
                "summary": "Edit artwork fields",
                "tags": ["artworks"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "artwork_id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "updated"}, "404": {"description": "not found"}}
            }
        },
        "/api/artworks/{artwork_id}/order": {
            "put": {
                "summary": "Set the display order of an artwork",
                "tags": ["ordering"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "artwork_id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "updated"}, "400": {"description": "negative order"}}
            }
        },
        "/api/artworks/order/swap": {
            "post": {
                "summary": "Swap the display order of two artworks",
                "tags": ["ordering"],
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "swapped"}, "500": {"description": "partially applied"}}
            }
        },
        "/api/artworks/reorder": {
            "post": {
                "summary": "Set the display order of several artworks",
                "tags": ["ordering"],
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "per-item results"}}
            }
        },
        "/api/artworks/bulk-upload": {
            "post": {
                "summary": "Import parsed CSV rows",
                "tags": ["artworks"],
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "per-row results"}}
            }
        },
        "/api/gallery/{category}": {
            "get": {
                "summary": "List one category in display order",
                "tags": ["ordering"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "category", "required": true, "type": "string"}],
                "responses": {"200": {"description": "gallery"}}
            }
        },
        "/api/vote": {
            "get": {
                "summary": "List the calling judge's votes",
                "tags": ["votes"],
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "votes"}}
            },
            "post": {
                "summary": "Create or replace the caller's vote for an artwork",
                "tags": ["votes"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitVoteRequest"}}],
                "responses": {"200": {"description": "updated"}, "201": {"description": "created"}, "404": {"description": "artwork not found"}}
            }
        },
        "/api/vote/{vote_id}": {
            "delete": {
                "summary": "Delete a vote",
                "tags": ["votes"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "vote_id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "deleted"}, "403": {"description": "not the owner"}}
            }
        },
        "/api/results": {
            "get": {
                "summary": "Aggregated results",
                "tags": ["results"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "query", "name": "limit", "type": "integer"}],
                "responses": {"200": {"description": "results"}, "403": {"description": "admin only"}}
            }
        },
        "/api/judges": {
            "get": {
                "summary": "List judges",
                "tags": ["judges"],
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "judges"}}
            },
            "post": {
                "summary": "Create a judge",
                "tags": ["judges"],
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "created"}, "409": {"description": "username taken"}}
            }
        },
        "/api/judges/{judge_id}": {
            "put": {
                "summary": "Update a judge",
                "tags": ["judges"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "judge_id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "updated"}, "404": {"description": "not found"}}
            },
            "delete": {
                "summary": "Delete a judge",
                "tags": ["judges"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "judge_id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "deleted"}, "404": {"description": "not found"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "SubmitVoteRequest": {
            "type": "object",
            "properties": {
                "artworkId": {"type": "string"},
                "comment": {"type": "string"},
                "scores": {
                    "type": "object",
                    "properties": {
                        "techniqueExecution": {"type": "number"},
                        "creativityOriginality": {"type": "number"},
                        "conceptMessage": {"type": "number"},
                        "aestheticImpact": {"type": "number"}
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Art Jury API",
	Description:      "Judging, ordering and results for the art competition panel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
