// Package docs holds the swagger document for the species API.
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
        "/species": {
            "get": {
                "description": "Retrieves every species record ordered by id.",
                "produces": ["application/json"],
                "tags": ["species"],
                "summary": "List all species",
                "responses": {
                    "200": {"description": "Successfully retrieved list of species", "schema": {"$ref": "#/definitions/handlers.SpeciesListSuccessResponse"}},
                    "502": {"description": "Data store unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Validates, normalizes and stores a new species record.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["species"],
                "summary": "Create a species",
                "parameters": [
                    {"description": "Species to create", "name": "species", "in": "body", "required": true, "schema": {"$ref": "#/definitions/species.Input"}}
                ],
                "responses": {
                    "201": {"description": "Species created successfully", "schema": {"$ref": "#/definitions/handlers.SpeciesSuccessResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Data store unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/species/{id}": {
            "get": {
                "description": "Retrieves a single species record by id.",
                "produces": ["application/json"],
                "tags": ["species"],
                "summary": "Get a species",
                "parameters": [
                    {"type": "integer", "description": "Species ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SpeciesSuccessResponse"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Species not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Data store unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Validates, normalizes and replaces the fields of an existing species record.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["species"],
                "summary": "Update a species",
                "parameters": [
                    {"type": "integer", "description": "Species ID", "name": "id", "in": "path", "required": true},
                    {"description": "New field values", "name": "species", "in": "body", "required": true, "schema": {"$ref": "#/definitions/species.Input"}}
                ],
                "responses": {
                    "200": {"description": "Species updated successfully", "schema": {"$ref": "#/definitions/handlers.SpeciesSuccessResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Species not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Data store unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.SpeciesListSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Species"}},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handlers.SpeciesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.Species"},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.Species": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "common_name": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "kingdom": {"type": "string", "enum": ["Animalia", "Plantae", "Fungi", "Protista", "Archaea", "Bacteria"]},
                "scientific_name": {"type": "string"},
                "total_population": {"type": "integer"}
            }
        },
        "species.Input": {
            "type": "object",
            "properties": {
                "common_name": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "kingdom": {"type": "string"},
                "scientific_name": {"type": "string"},
                "total_population": {"type": "number"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Species Catalog API",
	Description:      "Browse and edit species records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
