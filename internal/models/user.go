package models

import "time"

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	BarberShopID *uint       `json:"barber_shop_id"`
	BarberShop   *BarberShop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber_shop,omitempty"`

	// Optional per-barber schedule override; empty means the shop window
	// (or the system default) applies.
	OpeningTime string `gorm:"size:5" json:"opening_time,omitempty"`
	ClosingTime string `gorm:"size:5" json:"closing_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsBarber() bool  { return u.Role == RoleBarber }
func (u *User) IsManager() bool { return u.Role == RoleManager }
func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsStaff() bool   { return u.IsBarber() || u.IsManager() || u.IsAdmin() }

// Hours exposes the barber's own opening window, when set.
func (u *User) Hours() (open, close string, ok bool) {
	if u.OpeningTime != "" && u.ClosingTime != "" {
		return u.OpeningTime, u.ClosingTime, true
	}
	return "", "", false
}
