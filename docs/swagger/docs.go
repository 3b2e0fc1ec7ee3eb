// Package swagger registers the storefront API description with swag so the
// gin-swagger UI can serve it at /swagger/index.html.
package swagger

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
        "/checkout/quote": {
            "post": {
                "tags": ["Checkout"],
                "summary": "Price a checkout set",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.QuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/checkout/discounts": {
            "get": {
                "tags": ["Checkout"],
                "summary": "List discount candidates",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "product_id", "required": true, "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/checkout/orders": {
            "post": {
                "tags": ["Checkout"],
                "summary": "Place an order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.PlaceOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/cart": {
            "get": {
                "tags": ["Cart"],
                "summary": "Get cart",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "query", "name": "selected", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "delete": {
                "tags": ["Cart"],
                "summary": "Clear cart",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/cart/items/{product_id}": {
            "patch": {
                "tags": ["Cart"],
                "summary": "Update cart quantity",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "path", "name": "product_id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object", "properties": {"quantity": {"type": "integer"}}}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/cart/checkout": {
            "post": {
                "tags": ["Cart"],
                "summary": "Start checkout",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object", "properties": {"selected_product_ids": {"type": "array", "items": {"type": "string"}}}}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/wishlist": {
            "get": {
                "tags": ["Wishlist"],
                "summary": "Get wishlist",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "delete": {
                "tags": ["Wishlist"],
                "summary": "Clear wishlist",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/wishlist/items/{product_id}": {
            "delete": {
                "tags": ["Wishlist"],
                "summary": "Remove wishlist item",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "path", "name": "product_id", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/products/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get product",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders": {
            "get": {
                "tags": ["Orders"],
                "summary": "List orders",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "query", "name": "stage", "type": "string", "enum": ["pending", "in_delivering", "successful", "refused"]}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/account": {
            "get": {
                "tags": ["Account"],
                "summary": "Get account",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/account/verify": {
            "post": {
                "tags": ["Account"],
                "summary": "Verify account",
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/account/email": {
            "post": {
                "tags": ["Account"],
                "summary": "Change email",
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/account/password": {
            "post": {
                "tags": ["Account"],
                "summary": "Change password",
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/account/forget-password": {
            "post": {
                "tags": ["Account"],
                "summary": "Send password reset",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/account/details": {
            "post": {
                "tags": ["Account"],
                "summary": "Update account details",
                "parameters": [
                    {"in": "header", "name": "accessToken", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    },
    "definitions": {
        "dto.LineItemRequest": {
            "type": "object",
            "required": ["product_id"],
            "properties": {
                "product_id": {"type": "string"},
                "name": {"type": "string"},
                "image": {"type": "string"},
                "price": {"type": "string"},
                "quantity": {"type": "integer"},
                "stock": {"type": "integer"},
                "selected_attributes_value": {"type": "string"}
            }
        },
        "dto.QuoteRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.LineItemRequest"}},
                "applied_discounts": {"type": "object", "additionalProperties": {"type": "object"}},
                "selected_product_ids": {"type": "array", "items": {"type": "string"}},
                "shipping_fee": {"type": "string"}
            }
        },
        "dto.QuoteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "lines": {"type": "array", "items": {"type": "object"}},
                "shipping_fee": {"type": "string"},
                "subtotal": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "dto.PlaceOrderRequest": {
            "type": "object",
            "required": ["items", "shipping_address", "payment_method"],
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.LineItemRequest"}},
                "applied_discounts": {"type": "object", "additionalProperties": {"type": "object"}},
                "shipping_address": {"type": "string"},
                "payment_method": {"type": "string", "enum": ["Pay now", "Pay on delivery"]}
            }
        },
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {
                    "type": "object",
                    "properties": {
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Storefront Checkout API",
	Description:      "Checkout pricing and shopper account API in front of the storefront backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
