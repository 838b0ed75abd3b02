package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index:idx_barber_start,priority:1" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	BarberShopID *uint       `json:"barber_shop_id"`
	BarberShop   *BarberShop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber_shop,omitempty"`

	// Exactly one client form is populated: a registered user reference,
	// or the free-text guest contact fields.
	UserID      *uint  `json:"user_id"`
	User        *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`
	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	AppointmentDate time.Time `gorm:"index:idx_barber_start,priority:2" json:"appointment_date"`
	Duration        int       `gorm:"not null" json:"duration"`
	ServiceType     string    `gorm:"size:100" json:"service_type"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// End returns the exclusive end of the occupied interval.
func (a *Appointment) End() time.Time {
	return a.AppointmentDate.Add(time.Duration(a.Duration) * time.Minute)
}

// StartHHMM returns the shop-local start time as "HH:MM".
func (a *Appointment) StartHHMM() string {
	return a.AppointmentDate.Format("15:04")
}
