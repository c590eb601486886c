package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /food-items のHTTP
type FoodItemHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewFoodItemHandler(uc *usecase.CatalogUsecase) *FoodItemHandler {
	return &FoodItemHandler{uc: uc}
}

type FoodItemRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       model.Money `json:"price"`
	Image       *string     `json:"image"`
	CategoryID  int64       `json:"category"`
	IsAvailable *bool       `json:"is_available"`
}

func (h *FoodItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/food-items")

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *FoodItemHandler) list(c echo.Context) error {
	var categoryID *int64
	if v := c.QueryParam("category"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category"})
		}
		categoryID = &x
	}

	out, err := h.uc.ListFoodItems(c.Request().Context(), usecase.ListFoodItemsInput{
		CategoryID: categoryID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FoodItemHandler) create(c echo.Context) error {
	var req FoodItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateFoodItem(c.Request().Context(), usecase.FoodItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FoodItemHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetFoodItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FoodItemHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req FoodItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateFoodItem(c.Request().Context(), id, usecase.FoodItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FoodItemHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteFoodItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
