// Package docs holds the swagger document served under /swagger. It follows
// the annotations in internal/handler and cmd/server; regenerate with
// `swag init -g cmd/server/main.go` after changing them.
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
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update user",
                "parameters": [
                    {"description": "User payload", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"description": "User payload", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.Response"}}
                }
            }
        },
        "/users/{user_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user by id",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.Response"}}
                }
            }
        }
    },
    "definitions": {
        "handler.CreateUserRequest": {
            "type": "object",
            "required": ["email", "first_name", "last_name", "user_name", "user_status"],
            "properties": {
                "department": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "user_name": {"type": "string", "maxLength": 50},
                "user_status": {"type": "string"}
            }
        },
        "handler.UpdateUserRequest": {
            "type": "object",
            "required": ["email", "first_name", "last_name", "user_id", "user_name", "user_status"],
            "properties": {
                "department": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "user_id": {"type": "integer"},
                "user_name": {"type": "string", "maxLength": 50},
                "user_status": {"type": "string"}
            }
        },
        "model.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "details": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "user_id": {"type": "integer"},
                "user_name": {"type": "string"},
                "user_status": {"type": "string", "enum": ["A", "I", "T"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "User Service",
	Description:      "User management service backing the users admin.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
