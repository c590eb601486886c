package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /carts の業務ロジック。
// 明細の小計は常に商品の現在価格×数量（スナップショットはチェックアウトまで取らない）。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	foodItemRepo repo.FoodItemRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	foodItemRepo repo.FoodItemRepository,
	categoryRepo repo.CategoryRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		foodItemRepo: foodItemRepo,
		categoryRepo: categoryRepo,
	}
}

type CartItemView struct {
	ID       int64        `json:"id"`
	FoodItem FoodItemView `json:"food_item"`
	Quantity int64        `json:"quantity"`
	Subtotal model.Money  `json:"subtotal"`
}

type CartView struct {
	ID         int64          `json:"id"`
	UserID     string         `json:"user_id"`
	CartItems  []CartItemView `json:"cart_items"`
	TotalPrice model.Money    `json:"total_price"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type AddItemInput struct {
	FoodItemID int64
	Quantity   int64
}

type ListCartsInput struct {
	UserID string
}

func (u *CartUsecase) ListCarts(ctx context.Context, in ListCartsInput) ([]CartView, error) {
	carts, err := u.cartRepo.List(ctx, repo.CartListQuery{UserID: in.UserID})
	if err != nil {
		return []CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]CartView, 0, len(carts))
	for _, cart := range carts {
		v, err := u.buildCartView(ctx, cart)
		if err != nil {
			return []CartView{}, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (u *CartUsecase) GetCart(ctx context.Context, cartID int64) (CartView, error) {
	if cartID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartView(ctx, cart)
}

// GetOrCreateCart はユーザーのカート取得（無ければ作って空を返す）。
func (u *CartUsecase) GetOrCreateCart(ctx context.Context, userID string) (CartView, error) {
	if strings.TrimSpace(userID) == "" {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartView(ctx, cart)
}

func (u *CartUsecase) DeleteCart(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartRepo.DeleteByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AddItem はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddItem(ctx context.Context, cartID int64, in AddItemInput) (CartView, error) {
	if cartID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.FoodItemID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "food_item_id is required")
	}
	if in.Quantity < 1 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "Quantity must be greater than 0")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 商品チェック
	_, err = u.foodItemRepo.FindByID(ctx, in.FoodItemID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "Food item not found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpsertByCartAndFoodItem(ctx, cart.ID, in.FoodItemID, in.Quantity); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartView(ctx, cart)
}

// RemoveItem は明細削除。
func (u *CartUsecase) RemoveItem(ctx context.Context, cartID int64, cartItemID int64) (CartView, error) {
	if cartID <= 0 || cartItemID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 所属チェック（他カートの明細は存在しない扱い）
	if _, err := u.cartItemRepo.FindByIDInCart(ctx, cartItemID, cart.ID); err != nil {
		if err == repo.ErrNotFound {
			return CartView{}, NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartView{}, NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartView(ctx, cart)
}

// UpdateItemQuantity は数量を指定値に上書き（加算ではない）。
func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, cartID int64, cartItemID int64, quantity int64) (CartView, error) {
	if cartID <= 0 || cartItemID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if quantity <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "Quantity must be greater than 0")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.cartItemRepo.FindByIDInCart(ctx, cartItemID, cart.ID); err != nil {
		if err == repo.ErrNotFound {
			return CartView{}, NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartView{}, NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartView(ctx, cart)
}

// 明細をまとめてCartViewを作る。小計はライブ価格で計算。
func (u *CartUsecase) buildCartView(ctx context.Context, cart model.Cart) (CartView, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]CartItemView, 0, len(items))
	var total model.Money = 0

	for _, it := range items {
		f, err := u.foodItemRepo.FindByID(ctx, it.FoodItemID)
		if err != nil {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		categoryName := ""
		if c, err := u.categoryRepo.FindByID(ctx, f.CategoryID); err == nil {
			categoryName = c.Name
		}

		subtotal := f.Price.Mul(it.Quantity)
		views = append(views, CartItemView{
			ID:       it.ID,
			FoodItem: toFoodItemView(f, categoryName),
			Quantity: it.Quantity,
			Subtotal: subtotal,
		})

		total += subtotal
	}

	return CartView{
		ID:         cart.ID,
		UserID:     cart.UserID,
		CartItems:  views,
		TotalPrice: total,
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}, nil
}
