package model

import "time"

type Review struct {
	ID             int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      int64    `gorm:"not null;index" json:"product_id"`
	Product        Product  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CustomerUserID int64    `gorm:"not null;index" json:"user"`
	Customer       Customer `gorm:"foreignKey:CustomerUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Rating         int      `gorm:"not null" json:"rating"`
	Comment        string   `gorm:"type:text" json:"comment"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
