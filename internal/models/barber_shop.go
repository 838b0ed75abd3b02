package models

import "time"

type BarberShop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	ShopName string `gorm:"size:100" json:"shop_name"`

	Address   string `gorm:"size:255" json:"address"`
	Regione   string `gorm:"size:50" json:"regione"`
	Provincia string `gorm:"size:50" json:"provincia"`
	Comune    string `gorm:"size:100" json:"comune"`

	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Description string `gorm:"size:500" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hours exposes the shop's opening window, when set.
func (s *BarberShop) Hours() (open, close string, ok bool) {
	if s.OpeningTime != "" && s.ClosingTime != "" {
		return s.OpeningTime, s.ClosingTime, true
	}
	return "", "", false
}
