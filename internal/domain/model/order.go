package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusInitialized PaymentStatus = "INITIALIZED"
	PaymentStatusProcessing  PaymentStatus = "PROCESSING"
	PaymentStatusSuccess     PaymentStatus = "SUCCESS"
	PaymentStatusFailed      PaymentStatus = "FAILED"
	PaymentStatusCancelled   PaymentStatus = "CANCELLED"
)

// 金額・顧客・支払情報はチェックアウト時点で確定し、以降statusのみ更新可。
// OrderIDは外部公開用トークン（内部IDとは別）。
type Order struct {
	ID              int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         string        `gorm:"type:varchar(36);not null;uniqueIndex" json:"order_id"`
	UserID          string        `gorm:"type:varchar(100);not null;index" json:"user_id"`
	Status          OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal        Money         `gorm:"not null" json:"subtotal"`
	Tax             Money         `gorm:"not null" json:"tax"`
	DeliveryFee     Money         `gorm:"not null" json:"delivery_fee"`
	TotalAmount     Money         `gorm:"not null" json:"total_amount"`
	CustomerName    *string       `gorm:"type:varchar(100)" json:"customer_name"`
	DeliveryAddress *string       `gorm:"type:text" json:"delivery_address"`
	PhoneNumber     *string       `gorm:"type:varchar(20)" json:"phone_number"`
	PickupTime      *time.Time    `json:"pickup_time"`
	PaymentMethod   *string       `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentID       *string       `gorm:"type:varchar(100)" json:"payment_id"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	CreatedAt       time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 注文ステータスとして妥当か
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// 支払ステータスとして妥当か
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusInitialized, PaymentStatusProcessing, PaymentStatusSuccess,
		PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}
