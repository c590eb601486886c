package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /invoices のHTTP（読み取り専用）
type InvoiceHandler struct {
	uc *usecase.InvoiceUsecase
}

// DI
func NewInvoiceHandler(uc *usecase.InvoiceUsecase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

func (h *InvoiceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/invoices")

	g.GET("", h.list)
	g.GET("/by-order", h.byOrder)
	g.GET("/:id", h.detail)
}

func (h *InvoiceHandler) list(c echo.Context) error {
	out, err := h.uc.ListInvoices(c.Request().Context(), usecase.ListInvoicesInput{
		UserID: c.QueryParam("user_id"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 外部公開の注文番号から請求書を引く
func (h *InvoiceHandler) byOrder(c echo.Context) error {
	orderID := c.QueryParam("order_id")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "order_id is required"})
	}

	out, err := h.uc.GetInvoiceByOrder(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvoiceHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
