package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Category *handler.CategoryHandler
	FoodItem *handler.FoodItemHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Invoice  *handler.InvoiceHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Category.RegisterRoutes(e)
	h.FoodItem.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Invoice.RegisterRoutes(e)
}
