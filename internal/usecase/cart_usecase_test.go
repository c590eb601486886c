package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type cartMocks struct {
	carts      *CartRepoMock
	cartItems  *CartItemRepoMock
	foodItems  *FoodItemRepoMock
	categories *CategoryRepoMock
}

func newCartTarget(t *testing.T) (*usecase.CartUsecase, cartMocks) {
	t.Helper()
	m := cartMocks{
		carts:      &CartRepoMock{},
		cartItems:  &CartItemRepoMock{},
		foodItems:  &FoodItemRepoMock{},
		categories: &CategoryRepoMock{},
	}
	return usecase.NewCartUsecase(m.carts, m.cartItems, m.foodItems, m.categories), m
}

func TestCartAddItem_UpsertsAndReturnsLiveTotals(t *testing.T) {
	uc, m := newCartTarget(t)
	ctx := context.Background()

	cart := model.Cart{ID: 3, UserID: "guest-1"}
	m.carts.On("FindByID", ctx, int64(3)).Return(cart, nil)
	m.foodItems.On("FindByID", ctx, int64(10)).Return(model.FoodItem{
		ID: 10, Name: "カレー", Price: model.Money(800), CategoryID: 1, IsAvailable: true,
	}, nil)
	m.cartItems.On("UpsertByCartAndFoodItem", ctx, int64(3), int64(10), int64(2)).Return(nil)
	m.cartItems.On("ListByCartID", ctx, int64(3)).Return([]model.CartItem{
		{ID: 7, CartID: 3, FoodItemID: 10, Quantity: 2},
	}, nil)
	m.categories.On("FindByID", ctx, int64(1)).Return(model.Category{ID: 1, Name: "メイン"}, nil)

	view, err := uc.AddItem(ctx, 3, usecase.AddItemInput{FoodItemID: 10, Quantity: 2})

	assert.NoError(t, err)
	assert.Len(t, view.CartItems, 1)
	assert.Equal(t, int64(2), view.CartItems[0].Quantity)
	assert.Equal(t, model.Money(1600), view.CartItems[0].Subtotal)
	assert.Equal(t, "メイン", view.CartItems[0].FoodItem.CategoryName)
	assert.Equal(t, model.Money(1600), view.TotalPrice)
	m.cartItems.AssertCalled(t, "UpsertByCartAndFoodItem", ctx, int64(3), int64(10), int64(2))
}

func TestCartAddItem_UnknownFoodItem(t *testing.T) {
	uc, m := newCartTarget(t)
	ctx := context.Background()

	m.carts.On("FindByID", ctx, int64(3)).Return(model.Cart{ID: 3}, nil)
	m.foodItems.On("FindByID", ctx, int64(999)).Return(model.FoodItem{}, repo.ErrNotFound)

	_, err := uc.AddItem(ctx, 3, usecase.AddItemInput{FoodItemID: 999, Quantity: 1})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Food item not found", he.Message)
	m.cartItems.AssertNotCalled(t, "UpsertByCartAndFoodItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartAddItem_QuantityMustBePositive(t *testing.T) {
	uc, m := newCartTarget(t)

	_, err := uc.AddItem(context.Background(), 3, usecase.AddItemInput{FoodItemID: 10, Quantity: 0})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "Quantity must be greater than 0", he.Message)
	m.carts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartUpdateItemQuantity_Overwrites(t *testing.T) {
	uc, m := newCartTarget(t)
	ctx := context.Background()

	cart := model.Cart{ID: 3, UserID: "guest-1"}
	m.carts.On("FindByID", ctx, int64(3)).Return(cart, nil)
	m.cartItems.On("FindByIDInCart", ctx, int64(7), int64(3)).Return(model.CartItem{ID: 7, CartID: 3, FoodItemID: 10, Quantity: 2}, nil)
	m.cartItems.On("UpdateQuantity", ctx, int64(7), int64(5)).Return(nil)
	m.cartItems.On("ListByCartID", ctx, int64(3)).Return([]model.CartItem{
		{ID: 7, CartID: 3, FoodItemID: 10, Quantity: 5},
	}, nil)
	m.foodItems.On("FindByID", ctx, int64(10)).Return(model.FoodItem{ID: 10, Price: model.Money(300), CategoryID: 1}, nil)
	m.categories.On("FindByID", ctx, int64(1)).Return(model.Category{ID: 1, Name: "メイン"}, nil)

	view, err := uc.UpdateItemQuantity(ctx, 3, 7, 5)

	assert.NoError(t, err)
	assert.Equal(t, model.Money(1500), view.TotalPrice)
	m.cartItems.AssertCalled(t, "UpdateQuantity", ctx, int64(7), int64(5))
}

func TestCartUpdateItemQuantity_RejectsZero(t *testing.T) {
	uc, m := newCartTarget(t)

	_, err := uc.UpdateItemQuantity(context.Background(), 3, 7, 0)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	m.cartItems.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartRemoveItem_OtherCartsItemIsNotFound(t *testing.T) {
	uc, m := newCartTarget(t)
	ctx := context.Background()

	m.carts.On("FindByID", ctx, int64(3)).Return(model.Cart{ID: 3}, nil)
	// 他カートの明細は所属チェックでErrNotFound
	m.cartItems.On("FindByIDInCart", ctx, int64(42), int64(3)).Return(model.CartItem{}, repo.ErrNotFound)

	_, err := uc.RemoveItem(ctx, 3, 42)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Cart item not found", he.Message)
	m.cartItems.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestCartGetOrCreate_RequiresUserID(t *testing.T) {
	uc, m := newCartTarget(t)

	_, err := uc.GetOrCreateCart(context.Background(), "   ")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "user_id is required", he.Message)
	m.carts.AssertNotCalled(t, "GetOrCreateByUserID", mock.Anything, mock.Anything)
}

func TestCartGetCart_NotFound(t *testing.T) {
	uc, m := newCartTarget(t)
	ctx := context.Background()

	m.carts.On("FindByID", ctx, int64(99)).Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.GetCart(ctx, 99)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
