package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type FoodItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewFoodItemGormRepository(db *gorm.DB) *FoodItemGormRepository {
	return &FoodItemGormRepository{db: db}
}

func (r *FoodItemGormRepository) List(ctx context.Context, q repo.FoodItemListQuery) ([]model.FoodItem, error) {
	db := r.db.WithContext(ctx).Model(&model.FoodItem{})

	// category 絞り込み
	if q.CategoryID != nil {
		db = db.Where("category_id = ?", *q.CategoryID)
	}

	var items []model.FoodItem
	if err := db.Order("id asc").Find(&items).Error; err != nil {
		return []model.FoodItem{}, err
	}
	return items, nil
}

func (r *FoodItemGormRepository) FindByID(ctx context.Context, id int64) (model.FoodItem, error) {
	var f model.FoodItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FoodItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FoodItem{}, err
	}
	return f, nil
}

func (r *FoodItemGormRepository) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.FoodItem{}, err
	}
	return f, nil
}

func (r *FoodItemGormRepository) Update(ctx context.Context, f model.FoodItem) error {
	res := r.db.WithContext(ctx).Model(&model.FoodItem{}).
		Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"name":         f.Name,
			"description":  f.Description,
			"price":        f.Price,
			"image":        f.Image,
			"category_id":  f.CategoryID,
			"is_available": f.IsAvailable,
			"updated_at":   f.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除。注文明細が参照していたらErrConflict、カート明細は連動して削除。
func (r *FoodItemGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f model.FoodItem
		if err := tx.Where("id = ?", id).First(&f).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		var referenced int64
		if err := tx.Model(&model.OrderItem{}).
			Where("food_item_id = ?", id).
			Count(&referenced).Error; err != nil {
			return err
		}
		if referenced > 0 {
			return repo.ErrConflict
		}

		if err := tx.Where("food_item_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FoodItem{}, id).Error
	})
}
