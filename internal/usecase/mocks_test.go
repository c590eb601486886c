package usecase_test

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type FoodItemRepoMock struct{ mock.Mock }

func (m *FoodItemRepoMock) List(ctx context.Context, q repo.FoodItemListQuery) ([]model.FoodItem, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.FoodItem)
	return items, args.Error(1)
}

func (m *FoodItemRepoMock) FindByID(ctx context.Context, id int64) (model.FoodItem, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(model.FoodItem)
	return f, args.Error(1)
}

func (m *FoodItemRepoMock) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).(model.FoodItem)
	return out, args.Error(1)
}

func (m *FoodItemRepoMock) Update(ctx context.Context, f model.FoodItem) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FoodItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Cart)
	return items, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) DeleteByID(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByIDInCart(ctx context.Context, cartItemID int64, cartID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID, cartID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByCartAndFoodItem(ctx context.Context, cartID int64, foodItemID int64, addQty int64) error {
	args := m.Called(ctx, cartID, foodItemID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByOrderID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) DeleteByID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type InvoiceRepoMock struct{ mock.Mock }

func (m *InvoiceRepoMock) List(ctx context.Context, q repo.InvoiceListQuery) ([]model.Invoice, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Invoice)
	return items, args.Error(1)
}

func (m *InvoiceRepoMock) FindByID(ctx context.Context, id int64) (model.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(model.Invoice)
	return inv, args.Error(1)
}

func (m *InvoiceRepoMock) FindByOrderID(ctx context.Context, orderID int64) (model.Invoice, error) {
	args := m.Called(ctx, orderID)
	inv, _ := args.Get(0).(model.Invoice)
	return inv, args.Error(1)
}

func (m *InvoiceRepoMock) Create(ctx context.Context, inv model.Invoice) (model.Invoice, error) {
	args := m.Called(ctx, inv)
	out, _ := args.Get(0).(model.Invoice)
	return out, args.Error(1)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxReposMock は固定のモックrepo一式をTxReposとして見せる
type TxReposMock struct {
	CartsMock      *CartRepoMock
	CartItemsMock  *CartItemRepoMock
	FoodItemsMock  *FoodItemRepoMock
	OrdersMock     *OrderRepoMock
	OrderItemsMock *OrderItemRepoMock
	InvoicesMock   *InvoiceRepoMock
}

func NewTxReposMock() *TxReposMock {
	return &TxReposMock{
		CartsMock:      &CartRepoMock{},
		CartItemsMock:  &CartItemRepoMock{},
		FoodItemsMock:  &FoodItemRepoMock{},
		OrdersMock:     &OrderRepoMock{},
		OrderItemsMock: &OrderItemRepoMock{},
		InvoicesMock:   &InvoiceRepoMock{},
	}
}

func (r *TxReposMock) Carts() repo.CartRepository           { return r.CartsMock }
func (r *TxReposMock) CartItems() repo.CartItemRepository   { return r.CartItemsMock }
func (r *TxReposMock) FoodItems() repo.FoodItemRepository   { return r.FoodItemsMock }
func (r *TxReposMock) Orders() repo.OrderRepository         { return r.OrdersMock }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.OrderItemsMock }
func (r *TxReposMock) Invoices() repo.InvoiceRepository     { return r.InvoicesMock }

// TxManagerMock は WithinTx の中で固定のreposを渡してunitテストを回す
type TxManagerMock struct {
	Repos *TxReposMock
	Calls int
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Calls++
	return fn(m.Repos)
}

// =====================
// IDGenerator / Clock
// =====================

// 決められたIDを順番に返す
type seqIDGen struct {
	ids []string
	i   int
}

func (g *seqIDGen) NewID() string {
	id := g.ids[g.i%len(g.ids)]
	g.i++
	return id
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}
