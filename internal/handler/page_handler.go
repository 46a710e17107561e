package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// 静的ページ（トップと決済後の戻り先）
type PageHandler struct {
	publicDir string
}

// DI
func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.GET("/success", h.success)
	e.GET("/cancel", h.cancel)
	e.Static("/public", h.publicDir)
}

func (h *PageHandler) index(c echo.Context) error {
	return c.File(filepath.Join(h.publicDir, "index.html"))
}

func (h *PageHandler) success(c echo.Context) error {
	return c.File(filepath.Join(h.publicDir, "success.html"))
}

func (h *PageHandler) cancel(c echo.Context) error {
	return c.File(filepath.Join(h.publicDir, "cancel.html"))
}
