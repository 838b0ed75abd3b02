package dto

import "github.com/barberbook/api/internal/models"

type ShopListDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ShopName    string `json:"shop_name"`
	Comune      string `json:"comune"`
	Provincia   string `json:"provincia"`
	Regione     string `json:"regione"`
	ImageURL    string `json:"image_url"`
	IsAvailable bool   `json:"is_available"`
}

func ShopList(shops []models.BarberShop) []ShopListDTO {
	out := make([]ShopListDTO, 0, len(shops))
	for i := range shops {
		s := &shops[i]
		out = append(out, ShopListDTO{
			ID:          s.ID,
			Name:        s.Name,
			ShopName:    s.ShopName,
			Comune:      s.Comune,
			Provincia:   s.Provincia,
			Regione:     s.Regione,
			ImageURL:    s.ImageURL,
			IsAvailable: s.IsAvailable,
		})
	}
	return out
}

type ShopDetailDTO struct {
	ShopListDTO
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

func ShopDetail(s *models.BarberShop) ShopDetailDTO {
	return ShopDetailDTO{
		ShopListDTO: ShopListDTO{
			ID:          s.ID,
			Name:        s.Name,
			ShopName:    s.ShopName,
			Comune:      s.Comune,
			Provincia:   s.Provincia,
			Regione:     s.Regione,
			ImageURL:    s.ImageURL,
			IsAvailable: s.IsAvailable,
		},
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		Description: s.Description,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
	}
}

type BarberDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	ShopID  *uint  `json:"shop_id"`
	Opening string `json:"opening_time,omitempty"`
	Closing string `json:"closing_time,omitempty"`
}

func BarberList(users []models.User) []BarberDTO {
	out := make([]BarberDTO, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, BarberDTO{
			ID:      u.ID,
			Name:    u.Name,
			ShopID:  u.BarberShopID,
			Opening: u.OpeningTime,
			Closing: u.ClosingTime,
		})
	}
	return out
}
