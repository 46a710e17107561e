package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, pageH *handler.PageHandler, checkoutH *handler.CheckoutHandler) {
	pageH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
}
