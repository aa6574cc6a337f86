// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/resumatch/main.go
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}
            }
        },
        "/v1/access": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["access"],
                "summary": "Check route access",
                "parameters": [
                    {"type": "string", "description": "Client route, e.g. /search", "name": "path", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accessResponse"}}}
            }
        },
        "/search": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search candidates",
                "parameters": [
                    {"description": "Search query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.searchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SearchResult"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/upload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Upload a resume",
                "parameters": [
                    {"type": "file", "description": "PDF resume", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Job category", "name": "category", "in": "formData", "required": true},
                    {"type": "string", "description": "Summary; generated when empty", "name": "summary", "in": "formData"}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.CandidateRecord"}}}
            }
        },
        "/upload/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CandidateRecord"}}}}
            }
        },
        "/upload/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["candidates"],
                "summary": "Delete a candidate",
                "parameters": [{"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "domain.Account": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "role": {"type": "string"}}
        },
        "domain.CandidateRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "filename": {"type": "string"},
                "originalName": {"type": "string"},
                "uploadDate": {"type": "string"},
                "category": {"type": "string"},
                "summary": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "experienceYears": {"type": "integer"},
                "educationLevel": {"type": "string"}
            }
        },
        "domain.SearchResult": {
            "type": "object",
            "properties": {
                "resume": {"$ref": "#/definitions/domain.CandidateRecord"},
                "matchScore": {"type": "integer"},
                "matchReason": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.Account"},
                "userType": {"type": "string"},
                "redirect_to": {"type": "string"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "user": {"$ref": "#/definitions/domain.Account"},
                "userType": {"type": "string"}
            }
        },
        "handler.searchRequest": {
            "type": "object",
            "required": ["query"],
            "properties": {"query": {"type": "string"}}
        },
        "handler.accessResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "allow": {"type": "boolean"},
                "redirect_to": {"type": "string"},
                "protected": {"type": "boolean"},
                "required_role": {"type": "string"},
                "required_user_type": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ResuMatch Candidate Search API",
	Description:      "Role-based login, resume upload and keyword candidate search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
