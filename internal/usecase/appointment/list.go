package appointment

import (
	"context"
	"time"

	"github.com/barberbook/api/internal/clock"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

type ListOptions struct {
	Date     string // optional YYYY-MM-DD
	Status   string
	BarberID *uint // elevated actors may narrow to one barber
}

func (o ListOptions) toFilter() (domain.ListFilter, error) {
	var filter domain.ListFilter

	if o.Date != "" {
		date, err := domain.ParseDate(o.Date, clock.Location())
		if err != nil {
			return filter, err
		}
		dayStart, dayEnd := domain.DayBounds(date)
		filter.DayStart = &dayStart
		filter.DayEnd = &dayEnd
	}

	if o.Status != "" {
		if !domain.IsValidStatus(o.Status) {
			return filter, httperr.ErrValidation("invalid_status", "Stato non valido.")
		}
		filter.Status = o.Status
	}

	filter.BarberID = o.BarberID
	return filter, nil
}

// ForActor lists what the actor is allowed to see: customers their own
// bookings, barbers their assigned ones, managers and admins their shop
// (optionally narrowed to one barber).
func (uc *ListAppointments) ForActor(
	ctx context.Context,
	actor domain.Actor,
	opts ListOptions,
) ([]models.Appointment, error) {

	if !actor.Authenticated {
		return nil, httperr.ErrForbidden("Accesso riservato agli utenti registrati.")
	}

	filter, err := opts.toFilter()
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleCustomer:
		id := actor.ID
		filter.UserID = &id
		filter.BarberID = nil

	case models.RoleBarber:
		id := actor.ID
		filter.BarberID = &id

	case models.RoleManager:
		if actor.ShopID == nil {
			return []models.Appointment{}, nil
		}
		filter.ShopID = actor.ShopID

	case models.RoleAdmin:
		// no scoping

	default:
		return nil, httperr.ErrForbidden("Ruolo non riconosciuto.")
	}

	return uc.repo.ListAppointments(ctx, filter)
}

// ForBarber lists one barber's appointments; the barber themselves or an
// elevated role.
func (uc *ListAppointments) ForBarber(
	ctx context.Context,
	actor domain.Actor,
	barberID uint,
	opts ListOptions,
) ([]models.Appointment, error) {

	allowed := actor.Authenticated &&
		(actor.ID == barberID ||
			actor.Role == models.RoleManager ||
			actor.Role == models.RoleAdmin)
	if !allowed {
		return nil, httperr.ErrForbidden("Non autorizzato.")
	}

	filter, err := opts.toFilter()
	if err != nil {
		return nil, err
	}
	filter.BarberID = &barberID

	return uc.repo.ListAppointments(ctx, filter)
}

// ForShop lists a shop's appointments; shop staff or an admin.
func (uc *ListAppointments) ForShop(
	ctx context.Context,
	actor domain.Actor,
	shopID uint,
	opts ListOptions,
) ([]models.Appointment, error) {

	sameShop := actor.ShopID != nil && *actor.ShopID == shopID
	allowed := actor.Authenticated &&
		(actor.Role == models.RoleAdmin ||
			((actor.Role == models.RoleBarber || actor.Role == models.RoleManager) && sameShop))
	if !allowed {
		return nil, httperr.ErrForbidden("Non autorizzato.")
	}

	filter, err := opts.toFilter()
	if err != nil {
		return nil, err
	}
	filter.ShopID = &shopID

	return uc.repo.ListAppointments(ctx, filter)
}

// ForBarberMonth feeds the barber's calendar view.
func (uc *ListAppointments) ForBarberMonth(
	ctx context.Context,
	actor domain.Actor,
	barberID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	allowed := actor.Authenticated &&
		(actor.ID == barberID ||
			actor.Role == models.RoleManager ||
			actor.Role == models.RoleAdmin)
	if !allowed {
		return nil, httperr.ErrForbidden("Non autorizzato.")
	}

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrValidation("invalid_year", "Anno non valido.")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrValidation("invalid_month", "Mese non valido.")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, clock.Location())
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		BarberID: &barberID,
		DayStart: &start,
		DayEnd:   &end,
	})
}
