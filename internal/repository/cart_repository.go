package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartListQuery struct {
	UserID string
}

type CartRepository interface {
	List(ctx context.Context, q CartListQuery) ([]model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	// チェックアウト用。カート行の行ロックを取って取得。
	FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error)
	GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error)
	DeleteByID(ctx context.Context, cartID int64) error
	// 明細を全削除（カート自体は残す）
	Clear(ctx context.Context, cartID int64) error
}
