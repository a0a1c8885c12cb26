package model

import "time"

type OrderStatus string

// ステータス文字列は移行元データと互換
const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      int64       `gorm:"not null;index" json:"product_id"`
	Product        Product     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CustomerUserID int64       `gorm:"not null;index" json:"customer"`
	Customer       Customer    `gorm:"foreignKey:CustomerUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity       int64       `gorm:"not null" json:"quantity"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice     int64       `gorm:"not null" json:"total_price"`
	CreatedAt      time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
