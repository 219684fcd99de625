// Package docs holds the OpenAPI document served under /swagger.
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
        "/games": {
            "get": {
                "description": "Returns every game, most recently created first.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "List games",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.Game"}
                        }
                    }
                }
            },
            "post": {
                "description": "Validates the payload and stores it at the front of the catalog.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Create a new game",
                "parameters": [
                    {
                        "description": "Game Info",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/catalog.GameInput"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/models.Game"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}
                    }
                }
            }
        },
        "/games/events": {
            "get": {
                "description": "Server-sent events: \"ready\" once connected, then one \"change\" event per create, update or delete.",
                "produces": ["text/event-stream"],
                "tags": ["games"],
                "summary": "Stream catalog changes",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Game"}
                    },
                    "404": {
                        "description": "Game not found",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponse"}
                    }
                }
            },
            "put": {
                "description": "Replaces only the fields present in the payload.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Update a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/catalog.GameInput"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Game"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}
                    },
                    "404": {
                        "description": "Game not found",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "tags": ["games"],
                "summary": "Delete a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Game not found",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.HealthResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "catalog.GameInput": {
            "type": "object",
            "properties": {
                "ano": {"type": "integer", "example": 2018},
                "genero": {"type": "string", "example": "Platformer"},
                "nota": {"type": "number", "example": 9},
                "plataforma": {"type": "string", "example": "Switch"},
                "titulo": {"type": "string", "example": "Celeste"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Jogo não encontrado"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string", "example": "2025-01-01T12:00:00.000Z"}
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {"type": "string"},
                    "example": ["title is required"]
                }
            }
        },
        "models.Game": {
            "type": "object",
            "properties": {
                "ano": {"type": "integer", "example": 2018},
                "genero": {"type": "string", "example": "Platformer"},
                "id": {"type": "integer", "example": 1},
                "nota": {"type": "number", "example": 9},
                "plataforma": {"type": "string", "example": "Switch"},
                "titulo": {"type": "string", "example": "Celeste"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Games Catalog API",
	Description:      "CRUD API for the games catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
