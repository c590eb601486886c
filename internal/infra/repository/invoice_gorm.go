package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

// invoice_date降順。user_idは親注文でのJOIN絞り込み。
func (r *InvoiceGormRepository) List(ctx context.Context, q repo.InvoiceListQuery) ([]model.Invoice, error) {
	db := r.db.WithContext(ctx).Model(&model.Invoice{})

	if q.UserID != "" {
		db = db.
			Joins("join orders on orders.id = invoices.order_id").
			Where("orders.user_id = ?", q.UserID)
	}

	var items []model.Invoice
	if err := db.Order("invoice_date desc").Find(&items).Error; err != nil {
		return []model.Invoice{}, err
	}
	return items, nil
}

func (r *InvoiceGormRepository) FindByID(ctx context.Context, id int64) (model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Invoice{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Invoice{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) Create(ctx context.Context, inv model.Invoice) (model.Invoice, error) {
	if err := r.db.WithContext(ctx).Create(&inv).Error; err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}
