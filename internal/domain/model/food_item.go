package model

import "time"

// 価格はMoney（セント）。カテゴリ削除でカスケード削除される。
type FoodItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       Money     `gorm:"not null" json:"price"`
	Image       *string   `gorm:"type:varchar(255)" json:"image"`
	CategoryID  int64     `gorm:"not null;index" json:"category"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
