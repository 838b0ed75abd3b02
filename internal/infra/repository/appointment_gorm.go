package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user")
		}
		return nil, httperr.ErrStorage(err)
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.BarberShop, error) {

	var shop models.BarberShop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_shop")
		}
		return nil, httperr.ErrStorage(err)
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) ListShops(
	ctx context.Context,
	filter domain.ShopFilter,
) ([]models.BarberShop, error) {

	q := r.db.WithContext(ctx).Model(&models.BarberShop{})

	if filter.Regione != "" {
		q = q.Where("regione = ?", filter.Regione)
	}
	if filter.Provincia != "" {
		q = q.Where("provincia = ?", filter.Provincia)
	}
	if filter.Comune != "" {
		q = q.Where("comune = ?", filter.Comune)
	}
	if filter.OnlyAvailable {
		q = q.Where("is_available = true")
	}

	var shops []models.BarberShop
	if err := q.Order("name ASC").Find(&shops).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return shops, nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
	shopID *uint,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).
		Where("role = ?", models.RoleBarber)

	if shopID != nil {
		q = q.Where("barber_shop_id = ?", *shopID)
	}

	var barbers []models.User
	if err := q.Order("name ASC").Find(&barbers).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return barbers, nil
}

func (r *AppointmentGormRepository) UpdateShopImageURL(
	ctx context.Context,
	shopID uint,
	url string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.BarberShop{}).
		Where("id = ?", shopID).
		Update("image_url", url)

	if res.Error != nil {
		return httperr.ErrStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("barber_shop")
	}
	return nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment")
		}
		return nil, httperr.ErrStorage(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status <> ? AND appointment_date >= ? AND appointment_date < ?",
			barberID, string(domain.StatusCancelled), dayStart, dayEnd,
		).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("BarberShop")

	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.BarberID != nil {
		q = q.Where("barber_id = ?", *filter.BarberID)
	}
	if filter.ShopID != nil {
		q = q.Where("barber_shop_id = ?", *filter.ShopID)
	}
	if filter.DayStart != nil && filter.DayEnd != nil {
		q = q.Where("appointment_date >= ? AND appointment_date < ?", *filter.DayStart, *filter.DayEnd)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var aps []models.Appointment
	if err := q.Order("appointment_date ASC").Find(&aps).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (conflict-checked writes)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.writeInSlot(ctx, ap, 0, func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.writeInSlot(ctx, ap, ap.ID, func(tx *gorm.DB) error {
		return tx.Save(ap).Error
	})
}

// writeInSlot runs the check-then-write sequence inside one transaction:
// lock the barber's day, re-check interval overlap, then write. The partial
// unique index on (barber_id, appointment_date) is the backstop for two
// transactions racing on the exact same start time; its violation is
// translated to the same ConflictError.
func (r *AppointmentGormRepository) writeInSlot(
	ctx context.Context,
	ap *models.Appointment,
	excludeID uint,
	write func(tx *gorm.DB) error,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dayStart, dayEnd := domain.DayBounds(ap.AppointmentDate)

		var existing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status <> ? AND appointment_date >= ? AND appointment_date < ?",
				ap.BarberID, string(domain.StatusCancelled), dayStart, dayEnd,
			).
			Order("appointment_date ASC").
			Find(&existing).Error; err != nil {
			return err
		}

		if conflicting, ok := domain.Overlaps(existing, ap.AppointmentDate, ap.Duration, excludeID); ok {
			return httperr.ErrConflict(conflicting.ID, conflicting.StartHHMM())
		}

		return write(tx)
	})

	if err == nil {
		return nil
	}
	if _, ok := httperr.AsConflict(err); ok {
		return err
	}
	if httperr.IsUniqueViolation(err) {
		return r.conflictAt(ctx, ap.BarberID, ap.AppointmentDate, excludeID)
	}
	return httperr.ErrStorage(err)
}

// conflictAt resolves which appointment won the race so the caller can
// report its id and time.
func (r *AppointmentGormRepository) conflictAt(
	ctx context.Context,
	barberID uint,
	start time.Time,
	excludeID uint,
) error {

	var winner models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status <> ? AND appointment_date = ? AND id <> ?",
			barberID, string(domain.StatusCancelled), start, excludeID,
		).
		First(&winner).Error

	if err != nil {
		return httperr.ErrConflict(0, start.Format("15:04"))
	}
	return httperr.ErrConflict(winner.ID, winner.StartHHMM())
}

// --------------------------------------------------
// Appointment (plain writes)
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return httperr.ErrStorage(err)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return httperr.ErrStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
