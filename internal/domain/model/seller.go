package model

// SellerはUserと1:1（user_idが主キー）
type Seller struct {
	UserID      int64  `gorm:"primaryKey" json:"user_id"`
	User        User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Image       string `gorm:"type:varchar(250)" json:"image"`
	MobileNo    string `gorm:"type:varchar(16);not null" json:"mobile_no"`
	FullAddress string `gorm:"type:varchar(250);not null" json:"full_address"`
}
