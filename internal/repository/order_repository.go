package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderListQuery struct {
	UserID string
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 外部公開トークン（Order.OrderID）で検索
	FindByOrderID(ctx context.Context, orderID string) (model.Order, error)
	// created_at降順
	List(ctx context.Context, q OrderListQuery) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// 明細・請求書も連動して削除
	DeleteByID(ctx context.Context, orderID int64) error
}
