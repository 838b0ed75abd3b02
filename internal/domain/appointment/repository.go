package appointment

import (
	"context"
	"time"

	"github.com/barberbook/api/internal/models"
)

type ListFilter struct {
	UserID   *uint
	BarberID *uint
	ShopID   *uint

	DayStart *time.Time
	DayEnd   *time.Time
	Status   string
}

type ShopFilter struct {
	Regione   string
	Provincia string
	Comune    string

	OnlyAvailable bool
}

type Repository interface {
	// -------- Directory --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.BarberShop, error)

	ListShops(
		ctx context.Context,
		filter ShopFilter,
	) ([]models.BarberShop, error)

	ListBarbers(
		ctx context.Context,
		shopID *uint,
	) ([]models.User, error)

	UpdateShopImageURL(
		ctx context.Context,
		shopID uint,
		url string,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ListAppointmentsForDay returns the barber's non-cancelled rows with
	// start in [dayStart, dayEnd), ordered by start.
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------

	// CreateAppointment atomically re-checks conflicts for the barber's day
	// and inserts. Returns ConflictError when the interval is taken; the
	// storage layer also owns the uniqueness constraint that closes the
	// concurrent check-then-insert race.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RescheduleAppointment is the same conflict-checked write, excluding
	// the appointment's own id from the check.
	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
