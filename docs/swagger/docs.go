// Package swagger registers the OpenAPI specification for the API.
package swagger

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
    "paths": {
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Admin login",
                "description": "Authenticate with username and password; sets the admin_session cookie",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/LoginResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Admin logout",
                "security": [{"CookieAuth": []}],
                "responses": {
                    "200": {"description": "Logged out"}
                }
            }
        },
        "/api/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Public"],
                "summary": "List projects (public)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Project"}}}
                }
            }
        },
        "/api/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Public"],
                "summary": "Get project (public)",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Project"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Public"],
                "summary": "List testimonials (public)",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/admin/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "List projects",
                "security": [{"CookieAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Create project",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Project"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/admin/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Get project",
                "security": [{"CookieAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Update project",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProjectRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Delete project",
                "security": [{"CookieAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/api/admin/projects/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Upload attachment",
                "security": [{"CookieAuth": []}],
                "parameters": [{"name": "file", "in": "formData", "type": "file", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/admin/testcases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["TestCases"],
                "summary": "List test cases",
                "security": [{"CookieAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TestCases"],
                "summary": "Create test case",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TestCaseRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/admin/testcases/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TestCases"],
                "summary": "Update test case status",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown status"}, "404": {"description": "Not found"}}
            }
        },
        "/api/admin/testcases/{id}/notes": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TestCases"],
                "summary": "Update test case notes",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ValueRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/admin/testcases/{id}/procedure": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TestCases"],
                "summary": "Update test case procedure",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ValueRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/system-info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "System info",
                "security": [{"CookieAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/capture-image": {
            "get": {
                "produces": ["application/json"],
                "tags": ["HotSeat"],
                "summary": "Capture camera image",
                "security": [{"CookieAuth": []}],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Camera not available"}}
            }
        },
        "/api/analyze-image": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["HotSeat"],
                "summary": "Analyze seat occupancy",
                "security": [{"CookieAuth": []}],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Vision failed"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Get service version",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "rememberMe": {"type": "boolean"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "expiresAt": {"type": "string"}
            }
        },
        "Project": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "details": {"type": "string"},
                "file_url": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "ProjectRequest": {
            "type": "object",
            "required": ["title", "description", "details"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "details": {"type": "string"},
                "file_url": {"type": "string"}
            }
        },
        "TestCaseRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "procedure": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "StatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["Passed", "Failed", "Pending"]}
            }
        },
        "ValueRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        },
        "AnalyzeRequest": {
            "type": "object",
            "properties": {
                "image": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "admin_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Folio API",
	Description:      "Personal portfolio service: public project pages, admin management API, manual test tracking and the HotSeat camera endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
