// Package docs : swagger описание API, регистрируется в swag и отдаётся через http-swagger.
// Шаблон поддерживается вручную вместе с аннотациями хэндлеров
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
        "/api/auth/login": {
            "post": {
                "description": "Выдаёт пару access и refresh токенов по имени пользователя и паролю",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Аутентификация пользователя",
                "parameters": [
                    {
                        "description": "Тело запроса",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requestresponse.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Успешная аутентификация", "schema": {"$ref": "#/definitions/requestresponse.TokensResponse"}},
                    "400": {"description": "Некорректный JSON", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Неверный логин или пароль", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "503": {"description": "Хранилище недоступно", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/auth/refresh": {
            "post": {
                "description": "Обменивает refresh токен на новую пару. Предъявленный refresh токен становится недействительным",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Обновление токенов",
                "parameters": [
                    {
                        "description": "Тело запроса",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requestresponse.RefreshTokenRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Новые access и refresh токены", "schema": {"$ref": "#/definitions/requestresponse.TokensResponse"}},
                    "400": {"description": "Некорректный JSON или длина токена", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "401": {"description": "Токен не найден или просрочен", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "503": {"description": "Хранилище недоступно", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "description": "Удаляет refresh токен. Повторный выход и неизвестный токен тоже завершаются успешно",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Завершение сессии",
                "parameters": [
                    {
                        "description": "Тело запроса",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requestresponse.RefreshTokenRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.LogoutResponse"}},
                    "400": {"description": "Некорректный JSON", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Возвращает id пользователя из access токена",
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Идентификатор текущего пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "default": "Bearer <access_token>",
                        "description": "Bearer токен",
                        "name": "Authorization",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.CurrentUserResponse"}},
                    "401": {"description": "Нет токена, токен невалиден или просрочен", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            },
            "head": {
                "security": [{"ApiKeyAuth": []}],
                "description": "То же, что GET /api/auth/me, но без тела ответа",
                "tags": ["Authentication"],
                "summary": "Проверка access токена",
                "parameters": [
                    {
                        "type": "string",
                        "default": "Bearer <access_token>",
                        "description": "Bearer токен",
                        "name": "Authorization",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/register": {
            "post": {
                "description": "Создает пользователя. Имя от 3 до 25 символов, пароль от 8 до 64 символов",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Регистрация нового пользователя",
                "parameters": [
                    {
                        "description": "Тело запроса",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requestresponse.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/requestresponse.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Проверка доступности",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "requestresponse.CurrentUserResponse": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "object",
                    "properties": {"user_id": {"type": "integer", "example": 42}}
                }
            }
        },
        "requestresponse.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "invalid_token"},
                "text": {"type": "string", "example": "невалидный токен"}
            }
        },
        "requestresponse.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/requestresponse.ErrorDetail"}}
        },
        "requestresponse.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "example": "P@ssw0rd123"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "requestresponse.LogoutResponse": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "object",
                    "properties": {"logged_out": {"type": "boolean", "example": true}}
                }
            }
        },
        "requestresponse.RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string", "example": "3q2-7wXzYb0c1lK9mN8pQ4rS5tU6vW7xY8zA1bC2dE3"}
            }
        },
        "requestresponse.RegisterData": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer", "example": 42},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "requestresponse.RegisterRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "example": "P@ssw0rd!"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "requestresponse.RegisterResponse": {
            "type": "object",
            "properties": {"response": {"$ref": "#/definitions/requestresponse.RegisterData"}}
        },
        "requestresponse.TokensResponse": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "object",
                    "properties": {
                        "access_token": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."},
                        "refresh_token": {"type": "string", "example": "3q2-7wXzYb0c1lK9mN8pQ4rS5tU6vW7xY8zA1bC2dE3"}
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Token-auth-server",
	Description:      "REST API аутентификации по bearer токенам",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
