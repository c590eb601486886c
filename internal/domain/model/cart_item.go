package model

import "time"

// カートの明細
// 価格スナップショットは持たない。小計は常に商品の現在価格×数量。
// (cart, food_item) につき1行。加算はget-or-create側で行う。
type CartItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     int64     `gorm:"not null;index" json:"cart_id"`
	FoodItemID int64     `gorm:"not null;index" json:"food_item_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
