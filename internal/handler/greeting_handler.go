package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// ItemCreateResponse は POST /items/ の出力。
// 税率は7%固定。
type ItemCreateResponse struct {
	ItemName     string  `json:"item_name"`
	PriceWithTax float64 `json:"price_with_tax"`
}

// itemCreateRequest はポインタ受けで必須フィールドの欠落を検出する。
type itemCreateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Tax         *float64 `json:"tax"`
}

type UserResponse struct {
	UserID int64 `json:"user_id"`
}

type ItemsQueryResponse struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// 固定メッセージ中心のデモAPI。ストアは持たない。
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

func (h *GreetingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/about", h.about)

	// /products はどのverbも固定メッセージを返すだけ（ストアとは無関係）
	e.GET("/products", h.listProducts)
	e.POST("/products", h.createProduct)
	e.PUT("/products", h.updateProduct)
	e.PATCH("/products", h.partialUpdateProduct)
	e.DELETE("/products", h.deleteProduct)

	e.GET("/users/:user_id", h.getUser)
	e.GET("/items/", h.getItems)
	e.POST("/items/", h.createItem)
}

func (h *GreetingHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Hello, World!"})
}

func (h *GreetingHandler) about(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "This is a simple about page"})
}

func (h *GreetingHandler) listProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "List of products"})
}

func (h *GreetingHandler) createProduct(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Create a new product"})
}

func (h *GreetingHandler) updateProduct(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Update an existing product"})
}

func (h *GreetingHandler) partialUpdateProduct(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Partially update a product"})
}

func (h *GreetingHandler) deleteProduct(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Delete a product"})
}

// user_id + 1 をそのまま返すだけ
func (h *GreetingHandler) getUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid user id"})
	}
	return c.JSON(http.StatusOK, UserResponse{UserID: userID + 1})
}

func (h *GreetingHandler) getItems(c echo.Context) error {
	// skip（default 0）
	skip := 0
	if v := c.QueryParam("skip"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid skip"})
		}
		skip = s
	}

	// limit（default 10）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid limit"})
		}
		limit = l
	}

	return c.JSON(http.StatusOK, ItemsQueryResponse{Skip: skip, Limit: limit})
}

func (h *GreetingHandler) createItem(c echo.Context) error {
	var req itemCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid body"})
	}
	if req.Name == nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "name is required"})
	}
	if req.Price == nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "price is required"})
	}

	item := model.Item{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Tax:         req.Tax,
	}

	return c.JSON(http.StatusOK, ItemCreateResponse{
		ItemName:     item.Name,
		PriceWithTax: item.Price * 1.07,
	})
}
