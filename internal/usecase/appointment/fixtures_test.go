package appointment

import (
	"testing"
	"time"

	"github.com/barberbook/api/internal/clock"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/models"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

// pinClock freezes "now" at 2026-09-01 08:00 shop-local for the test.
func pinClock(t *testing.T) {
	t.Helper()
	restore := clock.SetNow(func() time.Time {
		return time.Date(2026, time.September, 1, 8, 0, 0, 0, clock.Location())
	})
	t.Cleanup(restore)
}

func testDurations() domain.DurationTable {
	return domain.NewDurationTable(map[string]int{
		"taglio + barba": 45,
		"barba":          15,
		"taglio":         30,
	}, 30)
}

// seedShopAndBarber fills the repo with one shop (id 1) and one barber
// (id 10) working the shop's default hours.
func seedShopAndBarber(repo *memRepo) {
	repo.addShop(models.BarberShop{
		ID:          1,
		Name:        "Da Gino",
		ShopName:    "Barberia Da Gino",
		Regione:     "Lazio",
		Provincia:   "RM",
		Comune:      "Roma",
		IsAvailable: true,
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	})
	repo.addUser(models.User{
		ID:           10,
		Name:         "Gino Verdi",
		Email:        "gino@example.com",
		Role:         models.RoleBarber,
		BarberShopID: uintPtr(1),
	})
}

func seedCustomer(repo *memRepo) *models.User {
	return repo.addUser(models.User{
		ID:    5,
		Name:  "Mario Rossi",
		Email: "mario@example.com",
		Phone: "+39 333 1234567",
		Role:  models.RoleCustomer,
	})
}

func guestIdentity(t *testing.T) domain.ClientIdentity {
	t.Helper()
	ci, err := domain.GuestClient("Mario Rossi", "mario@example.com", "+39 333 1234567")
	if err != nil {
		t.Fatalf("guest identity: %v", err)
	}
	return ci
}

func newCreateUC(repo *memRepo) *CreateAppointment {
	return NewCreateAppointment(repo, testDurations(), nil, nil)
}

func newUpdateUC(repo *memRepo) *UpdateAppointment {
	return NewUpdateAppointment(repo, testDurations(), nil, nil)
}

func newAvailabilityUC(repo *memRepo) *GetAvailability {
	hours := NewHoursResolver(repo, domain.Window{Opening: "09:00", Closing: "18:00"})
	return NewGetAvailability(repo, hours, 30, nil)
}
