package model

import "time"

// 1セラーにつきショップは1つ（owner_user_idはユニーク）
type Shop struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerUserID int64   `gorm:"not null;uniqueIndex" json:"owner"`
	Owner       Seller  `gorm:"foreignKey:OwnerUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string  `gorm:"type:varchar(250);not null" json:"name"`
	Image       string  `gorm:"type:varchar(250)" json:"image"`
	Description string  `gorm:"type:text" json:"description"`
	Location    string  `gorm:"type:varchar(250);not null" json:"location"`
	Hotline     *string `gorm:"type:varchar(20)" json:"hotline"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
