package repository

import (
	"app/internal/domain/model"
	"context"
)

type InvoiceListQuery struct {
	// 親注文のuser_idで絞る
	UserID string
}

type InvoiceRepository interface {
	// invoice_date降順
	List(ctx context.Context, q InvoiceListQuery) ([]model.Invoice, error)
	FindByID(ctx context.Context, id int64) (model.Invoice, error)
	// 親注文の内部IDで検索（1対1）
	FindByOrderID(ctx context.Context, orderID int64) (model.Invoice, error)
	Create(ctx context.Context, inv model.Invoice) (model.Invoice, error)
}
