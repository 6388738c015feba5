// Package docs registers the OpenAPI document served under /api-docs.
// Regenerate with: swag init -g cmd/netbeans-server/main.go
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "degraded"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/createUserRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Email already registered"}}
            }
        },
        "/api/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Cannot delete SUPERADMIN"}, "404": {"description": "User not found"}}
            }
        },
        "/api/users/{id}/role": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Change a user's role",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/updateRoleRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/jobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "List job postings",
                "parameters": [
                    {"type": "boolean", "name": "active", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/job"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Create a job posting",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/createJobRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/job"}}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/jobs/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Get a job posting",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/job"}}, "404": {"description": "Job not found"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Update a job posting",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "No updatable fields provided"}, "404": {"description": "Job not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Delete a job posting",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Job not found"}}
            }
        },
        "/api/forms/contact": {
            "post": {
                "tags": ["forms"],
                "summary": "Submit the contact form",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/savedResponse"}}, "400": {"description": "Bad Request"}}
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms-admin"],
                "summary": "List contact submissions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/forms/consultation": {
            "post": {
                "tags": ["forms"],
                "summary": "Request a consultation",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/savedResponse"}}, "400": {"description": "Bad Request"}}
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms-admin"],
                "summary": "List consultation requests",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/forms/job-application": {
            "post": {
                "tags": ["forms"],
                "summary": "Apply for a job (multipart, resume file required)",
                "consumes": ["multipart/form-data"],
                "parameters": [{"type": "file", "name": "resume", "in": "formData", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/savedResponse"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/forms/job-applications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms-admin"],
                "summary": "List job applications",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/forms/job-applications/{id}/resume": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms-admin"],
                "summary": "Download the resume of an application",
                "produces": ["application/octet-stream"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "savedResponse": {
            "type": "object",
            "properties": {"saved": {"type": "object"}, "message": {"type": "string"}}
        },
        "loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "token_type": {"type": "string", "example": "Bearer"},
                "expires_in": {"type": "string", "example": "1h0m0s"},
                "expires_at": {"type": "string", "format": "date-time"},
                "user": {"$ref": "#/definitions/user"}
            }
        },
        "user": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "JOB_MANAGER", "SUPERADMIN"]},
                "created_at": {"type": "string", "format": "date-time"},
                "created_by_admin_id": {"type": "string"}
            }
        },
        "createUserRequest": {
            "type": "object",
            "required": ["full_name", "email", "password"],
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "JOB_MANAGER"]}
            }
        },
        "updateRoleRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {"role": {"type": "string", "enum": ["ADMIN", "JOB_MANAGER"]}}
        },
        "createJobRequest": {
            "type": "object",
            "required": ["title", "description", "location", "type"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "short_description": {"type": "string"},
                "location": {"type": "string"},
                "department": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "job": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "short_description": {"type": "string"},
                "location": {"type": "string"},
                "department": {"type": "string"},
                "type": {"type": "string"},
                "is_active": {"type": "boolean"},
                "posted_by_user_id": {"type": "string"},
                "posted_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Netbeans Server API",
	Description:      "Recruitment site backend: auth, users, job postings and public forms.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
