package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newOrderTarget(t *testing.T) (*usecase.OrderUsecase, *TxManagerMock) {
	t.Helper()
	tx := &TxManagerMock{Repos: NewTxReposMock()}
	return usecase.NewOrderUsecase(tx), tx
}

func TestOrderUpdateStatus_Valid(t *testing.T) {
	uc, tx := newOrderTarget(t)
	r := tx.Repos
	ctx := context.Background()

	order := model.Order{ID: 1, OrderID: "abc", UserID: "u", Status: model.OrderStatusPending}
	r.OrdersMock.On("FindByID", ctx, int64(1)).Return(order, nil)
	r.OrdersMock.On("UpdateStatus", ctx, int64(1), model.OrderStatusCompleted).Return(nil)
	r.OrderItemsMock.On("ListByOrderID", ctx, int64(1)).Return([]model.OrderItem{}, nil)

	view, err := uc.UpdateStatus(ctx, 1, usecase.UpdateOrderStatusInput{Status: "completed"})

	assert.NoError(t, err)
	assert.Equal(t, "completed", view.Status)
}

// 遷移グラフは無いのでcompleted→pendingの巻き戻しも通る
func TestOrderUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	uc, tx := newOrderTarget(t)
	r := tx.Repos
	ctx := context.Background()

	order := model.Order{ID: 1, Status: model.OrderStatusCompleted}
	r.OrdersMock.On("FindByID", ctx, int64(1)).Return(order, nil)
	r.OrdersMock.On("UpdateStatus", ctx, int64(1), model.OrderStatusPending).Return(nil)
	r.OrderItemsMock.On("ListByOrderID", ctx, int64(1)).Return([]model.OrderItem{}, nil)

	view, err := uc.UpdateStatus(ctx, 1, usecase.UpdateOrderStatusInput{Status: "pending"})

	assert.NoError(t, err)
	assert.Equal(t, "pending", view.Status)
}

func TestOrderUpdateStatus_UnknownStatus(t *testing.T) {
	uc, tx := newOrderTarget(t)

	_, err := uc.UpdateStatus(context.Background(), 1, usecase.UpdateOrderStatusInput{Status: "shipped"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "Invalid status. Must be one of pending, processing, completed, cancelled", he.Message)
	assert.Equal(t, 0, tx.Calls)
}

func TestOrderUpdateStatus_Required(t *testing.T) {
	uc, tx := newOrderTarget(t)

	_, err := uc.UpdateStatus(context.Background(), 1, usecase.UpdateOrderStatusInput{Status: "  "})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "Status is required", he.Message)
	assert.Equal(t, 0, tx.Calls)
}

func TestOrderGet_BuildsItemViewsWithFrozenPrices(t *testing.T) {
	uc, tx := newOrderTarget(t)
	r := tx.Repos
	ctx := context.Background()

	order := model.Order{ID: 1, OrderID: "abc", UserID: "u", Status: model.OrderStatusPending, Subtotal: model.Money(900)}
	r.OrdersMock.On("FindByID", ctx, int64(1)).Return(order, nil)
	r.OrderItemsMock.On("ListByOrderID", ctx, int64(1)).Return([]model.OrderItem{
		{ID: 4, OrderID: 1, FoodItemID: 10, Quantity: 2, Price: model.Money(450)},
	}, nil)
	// 商品の現在価格が変わっていても明細は凍結価格のまま
	r.FoodItemsMock.On("FindByID", ctx, int64(10)).Return(model.FoodItem{ID: 10, Name: "バーガー", Price: model.Money(600)}, nil)

	view, err := uc.GetOrder(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, view.OrderItems, 1)
	assert.Equal(t, "バーガー", view.OrderItems[0].FoodName)
	assert.Equal(t, model.Money(450), view.OrderItems[0].Price)
	assert.Equal(t, model.Money(900), view.OrderItems[0].Subtotal)
}

func TestOrderGet_NotFound(t *testing.T) {
	uc, tx := newOrderTarget(t)
	r := tx.Repos
	ctx := context.Background()

	r.OrdersMock.On("FindByID", ctx, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetOrder(ctx, 9)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Order not found", he.Message)
}

func TestOrderDelete(t *testing.T) {
	uc, tx := newOrderTarget(t)
	r := tx.Repos
	ctx := context.Background()

	r.OrdersMock.On("DeleteByID", ctx, int64(1)).Return(nil)

	assert.NoError(t, uc.DeleteOrder(ctx, 1))
	r.OrdersMock.AssertCalled(t, "DeleteByID", ctx, int64(1))
}

func TestOrderList_FiltersByUser(t *testing.T) {
	uc, tx := newOrderTarget(t)
	r := tx.Repos
	ctx := context.Background()

	r.OrdersMock.On("List", ctx, repo.OrderListQuery{UserID: "guest-1"}).Return([]model.Order{
		{ID: 1, OrderID: "abc", UserID: "guest-1"},
	}, nil)
	r.OrderItemsMock.On("ListByOrderID", ctx, int64(1)).Return([]model.OrderItem{}, nil)

	views, err := uc.ListOrders(ctx, usecase.ListOrdersInput{UserID: "guest-1"})

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "abc", views[0].OrderID)
}
