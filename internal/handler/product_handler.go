package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// エラー時のボディは {"detail": "..."} に統一
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Detail: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
}

// ProductCreateRequest は作成ボディ。全フィールド必須。
// ポインタで受けて欠落を検出する。
type ProductCreateRequest struct {
	ID    *int64   `json:"id"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int64   `json:"stock"`
}

// /products のCRUD API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品CRUDのルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.update)
	e.DELETE("/products/:id", h.remove)
}

func (h *ProductHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product CRUD API"})
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid product id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid body"})
	}
	if req.ID == nil || req.Name == nil || req.Price == nil || req.Stock == nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "id, name, price and stock are required"})
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), model.Product{
		ID:    *req.ID,
		Name:  *req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid product id"})
	}

	var patch model.ProductUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid body"})
	}

	updated, err := h.uc.UpdateProduct(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid product id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

func parseProductID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
