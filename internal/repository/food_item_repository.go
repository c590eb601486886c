package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 参照が残っていて削除できない等
var ErrConflict = errors.New("conflict")

// 一覧検索
type FoodItemListQuery struct {
	CategoryID *int64
}

// 商品（フード）の永続化だけを約束。
type FoodItemRepository interface {
	List(ctx context.Context, q FoodItemListQuery) ([]model.FoodItem, error)
	FindByID(ctx context.Context, id int64) (model.FoodItem, error)

	Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error)
	Update(ctx context.Context, f model.FoodItem) error
	// 注文明細が参照している間はErrConflict。カート明細は連動して削除。
	Delete(ctx context.Context, id int64) error
}
