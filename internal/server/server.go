package server

import (
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RouteRegistrar はハンドラが自分のルートを登録するための約束。
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// New は共通ミドルウェア込みのechoエンジンを組み立てる。
func New(handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(appmw.RequestID())

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
	return e
}

// Start はルート登録済みのサーバを起動する。
func Start(addr string, handlers ...RouteRegistrar) error {
	e := New(handlers...)
	return e.Start(addr)
}
