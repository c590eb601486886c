package model

import "time"

// Priceは注文確定時点の価格スナップショット。以後のカタログ変更の影響を受けない。
type OrderItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64     `gorm:"not null;index" json:"order_id"`
	FoodItemID int64     `gorm:"not null;index" json:"food_item_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	Price      Money     `gorm:"not null" json:"price"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
