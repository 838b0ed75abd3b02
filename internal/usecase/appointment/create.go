package appointment

import (
	"context"

	"github.com/barberbook/api/internal/audit"
	"github.com/barberbook/api/internal/cache"
	"github.com/barberbook/api/internal/clock"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID uint

	Date string // YYYY-MM-DD
	Time string // loose, normalized here

	ServiceType string
	Notes       string

	Client domain.ClientIdentity
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	durations domain.DurationTable
	cache     *cache.Availability
	audit     *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	durations domain.DurationTable,
	slotCache *cache.Availability,
	dispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		durations: durations,
		cache:     slotCache,
		audit:     dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. The target must resolve to an actual barber.
	barber, err := uc.repo.GetUserByID(ctx, in.BarberID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrNotFound("barber")
		}
		return nil, err
	}
	if !barber.IsBarber() {
		return nil, httperr.ErrValidation("not_a_barber", "L'utente specificato non è un barbiere.")
	}

	// 2. Normalize the time and build the shop-local start timestamp.
	hhmm, err := domain.NormalizeTime(in.Time)
	if err != nil {
		return nil, err
	}

	start, err := domain.CombineDateTime(in.Date, hhmm, clock.Location())
	if err != nil {
		return nil, err
	}

	if start.Before(clock.Now()) {
		return nil, httperr.ErrValidation("past", "Non puoi prenotare un appuntamento nel passato.")
	}

	// 3. Service type decides the appointment length.
	duration := uc.durations.DurationFor(in.ServiceType)

	ap := &models.Appointment{
		BarberID:        barber.ID,
		BarberShopID:    barber.BarberShopID,
		AppointmentDate: start,
		Duration:        duration,
		ServiceType:     in.ServiceType,
		Notes:           in.Notes,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.applyClient(ctx, ap, in.Client); err != nil {
		return nil, err
	}

	// 4. Conflict check and insert happen atomically in the storage layer.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if _, ok := httperr.AsConflict(err); ok {
			uc.audit.Dispatch(audit.Event{
				ShopID:   barber.BarberShopID,
				UserID:   ap.UserID,
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"date": in.Date, "time": hhmm},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, barber.ID, in.Date)

	uc.audit.Dispatch(audit.Event{
		ShopID:   barber.BarberShopID,
		UserID:   ap.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// applyClient fills exactly one client form on the row: a registered user
// reference (contact fields copied from the account) or guest contact data.
func (uc *CreateAppointment) applyClient(
	ctx context.Context,
	ap *models.Appointment,
	client domain.ClientIdentity,
) error {

	if client.IsZero() {
		return httperr.ErrValidation("missing_client", "Identità del cliente mancante.")
	}

	if userID, ok := client.Registered(); ok {
		user, err := uc.repo.GetUserByID(ctx, userID)
		if err != nil {
			if httperr.IsNotFound(err) {
				return httperr.ErrValidation("invalid_user", "Utente non trovato.")
			}
			return err
		}
		id := user.ID
		ap.UserID = &id
		ap.ClientName = user.Name
		ap.ClientEmail = user.Email
		ap.ClientPhone = user.Phone
		return nil
	}

	ap.ClientName, ap.ClientEmail, ap.ClientPhone = client.Guest()
	return nil
}
