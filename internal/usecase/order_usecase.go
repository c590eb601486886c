package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemView struct {
	ID         int64       `json:"id"`
	FoodItemID int64       `json:"food_item"`
	FoodName   string      `json:"food_name"`
	Quantity   int64       `json:"quantity"`
	Price      model.Money `json:"price"`
	Subtotal   model.Money `json:"subtotal"`
}

type OrderView struct {
	ID              int64           `json:"id"`
	OrderID         string          `json:"order_id"`
	UserID          string          `json:"user_id"`
	Status          string          `json:"status"`
	Subtotal        model.Money     `json:"subtotal"`
	Tax             model.Money     `json:"tax"`
	DeliveryFee     model.Money     `json:"delivery_fee"`
	TotalAmount     model.Money     `json:"total_amount"`
	CustomerName    *string         `json:"customer_name"`
	DeliveryAddress *string         `json:"delivery_address"`
	PhoneNumber     *string         `json:"phone_number"`
	PickupTime      *time.Time      `json:"pickup_time"`
	PaymentMethod   *string         `json:"payment_method"`
	PaymentID       *string         `json:"payment_id"`
	PaymentStatus   string          `json:"payment_status"`
	OrderItems      []OrderItemView `json:"order_items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ListOrdersInput struct {
	UserID string
}

type UpdateOrderStatusInput struct {
	Status string
}

func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) ([]OrderView, error) {
	var outs []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx, repo.OrderListQuery{UserID: in.UserID})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			v, err := buildOrderView(ctx, r, o)
			if err != nil {
				return err
			}
			outs = append(outs, v)
		}
		return nil
	})

	if err != nil {
		return []OrderView{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderView, error) {
	if orderID <= 0 {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildOrderView(ctx, r, o)
		return err
	})

	if err != nil {
		return OrderView{}, err
	}
	return out, nil
}

// UpdateStatus は注文ステータスを上書きする。
// 遷移グラフの制限は設けない（completed→pendingも許可）。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, in UpdateOrderStatusInput) (OrderView, error) {
	if orderID <= 0 {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := strings.TrimSpace(in.Status)
	if newStatus == "" {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "Status is required")
	}
	if !model.OrderStatus(newStatus).Valid() {
		return OrderView{}, NewHTTPError(http.StatusBadRequest,
			"Invalid status. Must be one of pending, processing, completed, cancelled")
	}

	var out OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(newStatus)); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "Order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = model.OrderStatus(newStatus)
		out, err = buildOrderView(ctx, r, o)
		return err
	})

	if err != nil {
		return OrderView{}, err
	}
	return out, nil
}

func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().DeleteByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "Order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	return err
}

// 明細と商品名を引いてOrderViewを組み立てる。
// 明細のpriceは注文時の凍結価格、小計も凍結価格×数量。
func buildOrderView(ctx context.Context, r repo.TxRepos, o model.Order) (OrderView, error) {
	items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	itemViews := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		name := ""
		if f, err := r.FoodItems().FindByID(ctx, it.FoodItemID); err == nil {
			name = f.Name
		} else if err != repo.ErrNotFound {
			return OrderView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		itemViews = append(itemViews, OrderItemView{
			ID:         it.ID,
			FoodItemID: it.FoodItemID,
			FoodName:   name,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Subtotal:   it.Price.Mul(it.Quantity),
		})
	}

	return OrderView{
		ID:              o.ID,
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		DeliveryFee:     o.DeliveryFee,
		TotalAmount:     o.TotalAmount,
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		PhoneNumber:     o.PhoneNumber,
		PickupTime:      o.PickupTime,
		PaymentMethod:   o.PaymentMethod,
		PaymentID:       o.PaymentID,
		PaymentStatus:   string(o.PaymentStatus),
		OrderItems:      itemViews,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}, nil
}
