package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/handler/openapi"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// シード済みのCRUDサービスを組み立てる（実サーバと同じ配線）
func newCRUDServer() *echo.Echo {
	productRepo := infraRepo.NewProductMemoryRepository([]model.Product{
		{ID: 1, Name: "Laptop", Price: 25000, Stock: 5},
		{ID: 2, Name: "Mouse", Price: 500, Stock: 20},
	})
	productUC := usecase.NewProductUsecase(productRepo)
	productH := handler.NewProductHandler(productUC)
	docsH := handler.NewDocsHandler("Product CRUD API", openapi.CRUD)
	return server.New(productH, docsH)
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func mustDecodeProduct(t *testing.T, body []byte) model.Product {
	t.Helper()
	var v model.Product
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(Product) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProducts(t *testing.T, body []byte) []model.Product {
	t.Helper()
	var v []model.Product
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]Product) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeDetail(t *testing.T, body []byte) string {
	t.Helper()
	var v struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(detail) failed: %v body=%s", err, string(body))
	}
	return v.Detail
}

func mustDecodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var v struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(message) failed: %v body=%s", err, string(body))
	}
	return v.Message
}

func TestCRUD_Root(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product CRUD API", mustDecodeMessage(t, rec.Body.Bytes()))
}

func TestCRUD_ListProducts(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	items := mustDecodeProducts(t, rec.Body.Bytes())
	assert.Equal(t, []model.Product{
		{ID: 1, Name: "Laptop", Price: 25000, Stock: 5},
		{ID: 2, Name: "Mouse", Price: 500, Stock: 20},
	}, items)
}

func TestCRUD_GetProduct(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/products/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Product{ID: 1, Name: "Laptop", Price: 25000, Stock: 5}, mustDecodeProduct(t, rec.Body.Bytes()))
}

func TestCRUD_GetProduct_NotFound(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/products/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", mustDecodeDetail(t, rec.Body.Bytes()))
}

func TestCRUD_GetProduct_InvalidID(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/products/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCRUD_CreateProduct(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodPost, "/products", `{"id":3,"name":"Keyboard","price":1500,"stock":10}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.Product{ID: 3, Name: "Keyboard", Price: 1500, Stock: 10}, mustDecodeProduct(t, rec.Body.Bytes()))

	//作成後に取得でき、一覧も3件になる
	rec = doJSON(t, e, http.MethodGet, "/products/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/products", "")
	assert.Len(t, mustDecodeProducts(t, rec.Body.Bytes()), 3)
}

func TestCRUD_CreateProduct_DuplicateID(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodPost, "/products", `{"id":1,"name":"Another","price":1,"stock":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID already exists", mustDecodeDetail(t, rec.Body.Bytes()))

	//失敗時は一覧は2件のまま
	rec = doJSON(t, e, http.MethodGet, "/products", "")
	assert.Len(t, mustDecodeProducts(t, rec.Body.Bytes()), 2)
}

func TestCRUD_CreateProduct_MissingFields(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodPost, "/products", `{"id":4,"name":"NoPrice"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCRUD_UpdateProduct_PartialPatch(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodPut, "/products/2", `{"stock":15}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Product{ID: 2, Name: "Mouse", Price: 500, Stock: 15}, mustDecodeProduct(t, rec.Body.Bytes()))

	//他のフィールドは据え置きのまま保存されている
	rec = doJSON(t, e, http.MethodGet, "/products/2", "")
	assert.Equal(t, model.Product{ID: 2, Name: "Mouse", Price: 500, Stock: 15}, mustDecodeProduct(t, rec.Body.Bytes()))
}

func TestCRUD_UpdateProduct_EmptyPatch(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodPut, "/products/1", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Product{ID: 1, Name: "Laptop", Price: 25000, Stock: 5}, mustDecodeProduct(t, rec.Body.Bytes()))
}

func TestCRUD_UpdateProduct_NotFound(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodPut, "/products/99", `{"stock":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", mustDecodeDetail(t, rec.Body.Bytes()))
}

func TestCRUD_DeleteProduct(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodDelete, "/products/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", mustDecodeMessage(t, rec.Body.Bytes()))

	//削除後は404
	rec = doJSON(t, e, http.MethodGet, "/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/products", "")
	assert.Len(t, mustDecodeProducts(t, rec.Body.Bytes()), 1)
}

func TestCRUD_DeleteProduct_NotFound(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodDelete, "/products/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", mustDecodeDetail(t, rec.Body.Bytes()))
}

func TestCRUD_Docs(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var spec map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	//ビューア自身はスキーマに載せない
	paths, _ := spec["paths"].(map[string]any)
	assert.NotContains(t, paths, "/scalar")

	rec = doJSON(t, e, http.MethodGet, "/scalar", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api-reference")
}

func TestCRUD_RequestIDHeader(t *testing.T) {
	e := newCRUDServer()

	rec := doJSON(t, e, http.MethodGet, "/products", "")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
