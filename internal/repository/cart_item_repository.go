package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// 指定カートに属する明細だけを返す（他カートの明細はErrNotFound）
	FindByIDInCart(ctx context.Context, cartItemID int64, cartID int64) (model.CartItem, error)
	// 同一商品はプラス
	UpsertByCartAndFoodItem(ctx context.Context, cartID int64, foodItemID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
}
