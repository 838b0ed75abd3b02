package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberbook/api/internal/models"
)

// Seed creates an admin account and a couple of shops with barbers when the
// database is empty. Enabled with SEED=true; intended for local setups.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed: failed to hash password: %v", err)
		return
	}

	shops := []models.BarberShop{
		{
			Name:        "Da Mario",
			ShopName:    "Barberia Da Mario",
			Address:     "Via Roma 12",
			Regione:     "Lazio",
			Provincia:   "RM",
			Comune:      "Roma",
			Phone:       "0612345678",
			IsAvailable: true,
			OpeningTime: "09:00",
			ClosingTime: "18:00",
		},
		{
			Name:        "Figaro",
			ShopName:    "Figaro Club",
			Address:     "Corso Milano 4",
			Regione:     "Lombardia",
			Provincia:   "MI",
			Comune:      "Milano",
			Phone:       "0298765432",
			IsAvailable: true,
			OpeningTime: "08:30",
			ClosingTime: "19:30",
		},
	}
	for i := range shops {
		if err := db.Create(&shops[i]).Error; err != nil {
			log.Printf("seed: failed to create shop: %v", err)
			return
		}
	}

	admin := models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	db.Create(&admin)

	barbers := []models.User{
		{Name: "Mario Rossi", Email: "mario@example.com", Role: models.RoleBarber, BarberShopID: &shops[0].ID},
		{Name: "Luca Bianchi", Email: "luca@example.com", Role: models.RoleBarber, BarberShopID: &shops[0].ID},
		{Name: "Gigi Verdi", Email: "gigi@example.com", Role: models.RoleBarber, BarberShopID: &shops[1].ID},
	}
	for i := range barbers {
		barbers[i].PasswordHash = string(hashed)
		db.Create(&barbers[i])
	}

	log.Printf("seed: created %d shops and %d users", len(shops), len(barbers)+1)
}
