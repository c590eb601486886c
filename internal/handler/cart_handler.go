package handler

import (
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /carts のHTTP。チェックアウトもカートのサブ操作として受ける。
type CartHandler struct {
	uc         *usecase.CartUsecase
	checkoutUC *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, checkoutUC *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{uc: uc, checkoutUC: checkoutUC}
}

type CreateCartRequest struct {
	UserID string `json:"user_id"`
}

type AddItemRequest struct {
	FoodItemID int64  `json:"food_item_id"`
	Quantity   *int64 `json:"quantity"`
}

type RemoveItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
}

type UpdateItemQuantityRequest struct {
	CartItemID int64  `json:"cart_item_id"`
	Quantity   *int64 `json:"quantity"`
}

// 全フィールド任意。金額は"12.50"形式の文字列でも数値でも受ける。
type CheckoutRequest struct {
	Tax             *model.Money `json:"tax"`
	DeliveryFee     *model.Money `json:"delivery_fee"`
	TotalAmount     *model.Money `json:"total_amount"`
	CustomerName    *string      `json:"customer_name"`
	DeliveryAddress *string      `json:"delivery_address"`
	PhoneNumber     *string      `json:"phone_number"`
	PickupTime      *string      `json:"pickup_time"`
	PaymentMethod   *string      `json:"payment_method"`
	PaymentID       *string      `json:"payment_id"`
	PaymentStatus   *string      `json:"payment_status"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/carts")

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.detail)
	g.DELETE("/:id", h.delete)

	g.POST("/:id/add-item", h.addItem)
	g.POST("/:id/remove-item", h.removeItem)
	g.POST("/:id/update-item-quantity", h.updateItemQuantity)
	g.POST("/:id/checkout", h.checkout)
}

func (h *CartHandler) list(c echo.Context) error {
	out, err := h.uc.ListCarts(c.Request().Context(), usecase.ListCartsInput{
		UserID: c.QueryParam("user_id"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) create(c echo.Context) error {
	var req CreateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.GetOrCreateCart(c.Request().Context(), req.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CartHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteCart(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) addItem(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//数量は省略時1
	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	out, err := h.uc.AddItem(c.Request().Context(), id, usecase.AddItemInput{
		FoodItemID: req.FoodItemID,
		Quantity:   qty,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req RemoveItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.CartItemID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart_item_id is required"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), id, req.CartItemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItemQuantity(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateItemQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.CartItemID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart_item_id is required"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity is required"})
	}

	out, err := h.uc.UpdateItemQuantity(c.Request().Context(), id, req.CartItemID, *req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkout(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var pickupTime *time.Time
	if req.PickupTime != nil && *req.PickupTime != "" {
		t, err := time.Parse(time.RFC3339, *req.PickupTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pickup_time"})
		}
		pickupTime = &t
	}

	out, err := h.checkoutUC.Checkout(c.Request().Context(), id, usecase.CheckoutInput{
		Tax:             req.Tax,
		DeliveryFee:     req.DeliveryFee,
		TotalAmount:     req.TotalAmount,
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		PhoneNumber:     req.PhoneNumber,
		PickupTime:      pickupTime,
		PaymentMethod:   req.PaymentMethod,
		PaymentID:       req.PaymentID,
		PaymentStatus:   req.PaymentStatus,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
