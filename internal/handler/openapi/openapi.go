// Package openapi holds the embedded machine-readable schemas served at
// /openapi.json. The /scalar viewer is intentionally absent from both.
package openapi

// Greeting は greeting サービスのスキーマ。
var Greeting = []byte(`{
  "openapi": "3.1.0",
  "info": {"title": "Greeting API", "version": "0.1.0"},
  "paths": {
    "/": {
      "get": {
        "summary": "Read Root",
        "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}
      }
    },
    "/about": {
      "get": {
        "summary": "Read About",
        "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}
      }
    },
    "/products": {
      "get": {"summary": "Read Products", "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}},
      "post": {"summary": "Create Product", "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}},
      "put": {"summary": "Update Product", "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}},
      "patch": {"summary": "Partial Update Product", "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}},
      "delete": {"summary": "Delete Product", "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}}
    },
    "/users/{user_id}": {
      "get": {
        "summary": "Get User",
        "parameters": [{"name": "user_id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Successful Response", "content": {"application/json": {"schema": {"type": "object", "properties": {"user_id": {"type": "integer"}}}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    },
    "/items/": {
      "get": {
        "summary": "Get Items",
        "parameters": [
          {"name": "skip", "in": "query", "required": false, "schema": {"type": "integer", "default": 0}},
          {"name": "limit", "in": "query", "required": false, "schema": {"type": "integer", "default": 10}}
        ],
        "responses": {
          "200": {"description": "Successful Response", "content": {"application/json": {"schema": {"type": "object", "properties": {"skip": {"type": "integer"}, "limit": {"type": "integer"}}}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      },
      "post": {
        "summary": "Create Item",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Item"}}}},
        "responses": {
          "200": {"description": "Successful Response", "content": {"application/json": {"schema": {"type": "object", "properties": {"item_name": {"type": "string"}, "price_with_tax": {"type": "number"}}}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
      "Error": {"type": "object", "properties": {"detail": {"type": "string"}}},
      "Item": {
        "type": "object",
        "required": ["name", "price"],
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "price": {"type": "number"},
          "tax": {"type": "number"}
        }
      }
    }
  }
}`)

// CRUD は商品CRUDサービスのスキーマ。
var CRUD = []byte(`{
  "openapi": "3.1.0",
  "info": {"title": "Product CRUD API", "version": "0.1.0"},
  "paths": {
    "/": {
      "get": {
        "summary": "Read Root",
        "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}}}
      }
    },
    "/products": {
      "get": {
        "summary": "Get Products",
        "responses": {"200": {"description": "Successful Response", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Product"}}}}}}
      },
      "post": {
        "summary": "Create Product",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}},
        "responses": {
          "201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}},
          "400": {"description": "ID already exists", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    },
    "/products/{product_id}": {
      "get": {
        "summary": "Get Product",
        "parameters": [{"name": "product_id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}},
          "404": {"description": "Product not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      },
      "put": {
        "summary": "Update Product",
        "parameters": [{"name": "product_id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductUpdate"}}}},
        "responses": {
          "200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}},
          "404": {"description": "Product not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      },
      "delete": {
        "summary": "Delete Product",
        "parameters": [{"name": "product_id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Successful Response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Message"}}}},
          "404": {"description": "Product not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
          "422": {"description": "Validation Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
      "Error": {"type": "object", "properties": {"detail": {"type": "string"}}},
      "Product": {
        "type": "object",
        "required": ["id", "name", "price", "stock"],
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "price": {"type": "number"},
          "stock": {"type": "integer"}
        }
      },
      "ProductUpdate": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "price": {"type": "number"},
          "stock": {"type": "integer"}
        }
      }
    }
  }
}`)
