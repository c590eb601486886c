package model

import "time"

// 注文と1対1。InvoiceNumberは外部公開用トークン。
type Invoice struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64     `gorm:"not null;uniqueIndex" json:"order_id"`
	InvoiceNumber string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"invoice_number"`
	InvoiceDate   time.Time `gorm:"not null" json:"invoice_date"`
}
