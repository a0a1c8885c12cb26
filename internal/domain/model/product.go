package model

import "time"

type Product struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID      int64    `gorm:"not null;index" json:"shop_id"`
	Shop        Shop     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CategoryID  int64    `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Image       string   `gorm:"type:varchar(250)" json:"image"`
	// 価格は最小通貨単位のint64
	Price     int64     `gorm:"not null" json:"price"`
	Available int64     `gorm:"not null;default:0" json:"available"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
