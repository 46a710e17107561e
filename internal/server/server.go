package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New は設定済みのechoを返す。
func New(pageH *handler.PageHandler, checkoutH *handler.CheckoutHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, pageH, checkoutH)
	return e
}

func Start(addr string, pageH *handler.PageHandler, checkoutH *handler.CheckoutHandler) error {
	return New(pageH, checkoutH).Start(addr)
}
