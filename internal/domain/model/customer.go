package model

// CustomerはUserと1:1（user_idが主キー）
type Customer struct {
	UserID      int64  `gorm:"primaryKey" json:"user_id"`
	User        User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Balance     int64  `gorm:"not null;default:0" json:"balance"`
	Image       string `gorm:"type:varchar(250)" json:"image"`
	FullAddress string `gorm:"type:varchar(250);not null" json:"full_address"`
}
