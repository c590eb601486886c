package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase はカテゴリとフード商品のCRUD。
type CatalogUsecase struct {
	categoryRepo repo.CategoryRepository
	foodItemRepo repo.FoodItemRepository
}

// DI
func NewCatalogUsecase(
	categoryRepo repo.CategoryRepository,
	foodItemRepo repo.FoodItemRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		foodItemRepo: foodItemRepo,
	}
}

// FoodItemViewはカテゴリ名入りの商品表現
type FoodItemView struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        model.Money `json:"price"`
	Image        *string     `json:"image"`
	CategoryID   int64       `json:"category"`
	CategoryName string      `json:"category_name"`
	IsAvailable  bool        `json:"is_available"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type CategoryInput struct {
	Name        string
	Description *string
}

type FoodItemInput struct {
	Name        string
	Description string
	Price       model.Money
	Image       *string
	CategoryID  int64
	IsAvailable *bool
}

type ListFoodItemsInput struct {
	CategoryID *int64
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.categoryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CatalogUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	now := time.Now()
	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CatalogUsecase) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		UpdatedAt:   time.Now(),
	})
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCategory(ctx, id)
}

func (u *CatalogUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err == repo.ErrConflict {
		return NewHTTPError(http.StatusConflict, "category has food items referenced by orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) ListFoodItems(ctx context.Context, in ListFoodItemsInput) ([]FoodItemView, error) {
	items, err := u.foodItemRepo.List(ctx, repo.FoodItemListQuery{CategoryID: in.CategoryID})
	if err != nil {
		return []FoodItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// カテゴリ名はまとめて引いておく
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []FoodItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	views := make([]FoodItemView, 0, len(items))
	for _, f := range items {
		views = append(views, toFoodItemView(f, names[f.CategoryID]))
	}
	return views, nil
}

func (u *CatalogUsecase) GetFoodItem(ctx context.Context, id int64) (FoodItemView, error) {
	if id <= 0 {
		return FoodItemView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	f, err := u.foodItemRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return FoodItemView{}, NewHTTPError(http.StatusNotFound, "Food item not found")
	}
	if err != nil {
		return FoodItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	name := ""
	if c, err := u.categoryRepo.FindByID(ctx, f.CategoryID); err == nil {
		name = c.Name
	}
	return toFoodItemView(f, name), nil
}

func (u *CatalogUsecase) CreateFoodItem(ctx context.Context, in FoodItemInput) (FoodItemView, error) {
	if err := u.validateFoodItemInput(ctx, in); err != nil {
		return FoodItemView{}, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	now := time.Now()
	f, err := u.foodItemRepo.Create(ctx, model.FoodItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		IsAvailable: available,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return FoodItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetFoodItem(ctx, f.ID)
}

func (u *CatalogUsecase) UpdateFoodItem(ctx context.Context, id int64, in FoodItemInput) (FoodItemView, error) {
	if id <= 0 {
		return FoodItemView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validateFoodItemInput(ctx, in); err != nil {
		return FoodItemView{}, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	err := u.foodItemRepo.Update(ctx, model.FoodItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		IsAvailable: available,
		UpdatedAt:   time.Now(),
	})
	if err == repo.ErrNotFound {
		return FoodItemView{}, NewHTTPError(http.StatusNotFound, "Food item not found")
	}
	if err != nil {
		return FoodItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetFoodItem(ctx, id)
}

func (u *CatalogUsecase) DeleteFoodItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.foodItemRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Food item not found")
	}
	if err == repo.ErrConflict {
		return NewHTTPError(http.StatusConflict, "food item is referenced by orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) validateFoodItemInput(ctx context.Context, in FoodItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "category is required")
	}

	//カテゴリの存在チェック
	_, err := u.categoryRepo.FindByID(ctx, in.CategoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toFoodItemView(f model.FoodItem, categoryName string) FoodItemView {
	return FoodItemView{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Price:        f.Price,
		Image:        f.Image,
		CategoryID:   f.CategoryID,
		CategoryName: categoryName,
		IsAvailable:  f.IsAvailable,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
