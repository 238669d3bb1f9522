package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// /scalar と /openapi.json をまとめる。
// ビューアはCDN配信のScalarで、スキーマ自体は埋め込みJSON。
// /scalar はスキーマには載せない。
type DocsHandler struct {
	title string
	spec  []byte
}

// DI
func NewDocsHandler(title string, spec []byte) *DocsHandler {
	return &DocsHandler{title: title, spec: spec}
}

func (h *DocsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.json", h.openapi)
	e.GET("/scalar", h.scalar)
}

func (h *DocsHandler) openapi(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, h.spec)
}

func (h *DocsHandler) scalar(c echo.Context) error {
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>` + h.title + `</title>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>`
	return c.HTML(http.StatusOK, html)
}
