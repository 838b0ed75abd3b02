package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

// memRepo is an in-memory Repository. The conflict-checked writes take the
// same lock the real implementation takes a row lock for, so the
// concurrency tests exercise the one-winner guarantee.
type memRepo struct {
	mu sync.Mutex

	users        map[uint]*models.User
	shops        map[uint]*models.BarberShop
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:        make(map[uint]*models.User),
		shops:        make(map[uint]*models.BarberShop),
		appointments: make(map[uint]*models.Appointment),
	}
}

var _ domain.Repository = (*memRepo)(nil)

func (r *memRepo) addUser(u models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = &u
	return &u
}

func (r *memRepo) addShop(s models.BarberShop) *models.BarberShop {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[s.ID] = &s
	return &s
}

func (r *memRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, httperr.ErrNotFound("user")
}

func (r *memRepo) GetShopByID(_ context.Context, id uint) (*models.BarberShop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.shops[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, httperr.ErrNotFound("shop")
}

func (r *memRepo) ListShops(_ context.Context, filter domain.ShopFilter) ([]models.BarberShop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.BarberShop
	for _, s := range r.shops {
		if filter.Regione != "" && s.Regione != filter.Regione {
			continue
		}
		if filter.Provincia != "" && s.Provincia != filter.Provincia {
			continue
		}
		if filter.Comune != "" && s.Comune != filter.Comune {
			continue
		}
		if filter.OnlyAvailable && !s.IsAvailable {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) ListBarbers(_ context.Context, shopID *uint) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.User
	for _, u := range r.users {
		if !u.IsBarber() {
			continue
		}
		if shopID != nil && (u.BarberShopID == nil || *u.BarberShopID != *shopID) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) UpdateShopImageURL(_ context.Context, shopID uint, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[shopID]
	if !ok {
		return httperr.ErrNotFound("shop")
	}
	s.ImageURL = url
	return nil
}

func (r *memRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap, ok := r.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, httperr.ErrNotFound("appointment")
}

func (r *memRepo) ListAppointmentsForDay(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dayLocked(barberID, dayStart, dayEnd), nil
}

func (r *memRepo) dayLocked(barberID uint, dayStart, dayEnd time.Time) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !domain.Status(ap.Status).Occupies() {
			continue
		}
		if ap.AppointmentDate.Before(dayStart) || !ap.AppointmentDate.Before(dayEnd) {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out
}

func (r *memRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.UserID != nil && (ap.UserID == nil || *ap.UserID != *filter.UserID) {
			continue
		}
		if filter.BarberID != nil && ap.BarberID != *filter.BarberID {
			continue
		}
		if filter.ShopID != nil && (ap.BarberShopID == nil || *ap.BarberShopID != *filter.ShopID) {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		if filter.DayStart != nil && ap.AppointmentDate.Before(*filter.DayStart) {
			continue
		}
		if filter.DayEnd != nil && !ap.AppointmentDate.Before(*filter.DayEnd) {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (r *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	return r.writeInSlot(ap, 0)
}

func (r *memRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	return r.writeInSlot(ap, ap.ID)
}

func (r *memRepo) writeInSlot(ap *models.Appointment, excludeID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dayStart, dayEnd := domain.DayBounds(ap.AppointmentDate)
	existing := r.dayLocked(ap.BarberID, dayStart, dayEnd)

	if winner, conflict := domain.Overlaps(existing, ap.AppointmentDate, ap.Duration, excludeID); conflict {
		return httperr.ErrConflict(winner.ID, winner.StartHHMM())
	}

	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *memRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *memRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[id]; !ok {
		return httperr.ErrNotFound("appointment")
	}
	delete(r.appointments, id)
	return nil
}
