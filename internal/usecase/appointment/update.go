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

// Nil pointer fields stay untouched.
type UpdateAppointmentInput struct {
	AppointmentID uint
	Actor         domain.Actor

	Date *string
	Time *string

	ServiceType *string
	Notes       *string
	Status      *string
	BarberID    *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo      domain.Repository
	durations domain.DurationTable
	cache     *cache.Availability
	audit     *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	durations domain.DurationTable,
	slotCache *cache.Availability,
	dispatcher *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		durations: durations,
		cache:     slotCache,
		audit:     dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	scope := in.Actor.ScopeFor(ap)
	if scope == domain.ScopeNone {
		return nil, httperr.ErrForbidden("Non autorizzato a modificare questo appuntamento.")
	}

	// Clients may only move the appointment or edit its notes.
	if scope == domain.ScopeClient &&
		(in.ServiceType != nil || in.Status != nil || in.BarberID != nil) {
		return nil, httperr.ErrForbidden("Puoi modificare solo data, orario e note.")
	}

	oldDate := ap.AppointmentDate.Format("2006-01-02")
	oldBarberID := ap.BarberID
	rescheduled := false

	if in.BarberID != nil && *in.BarberID != ap.BarberID {
		if !in.Actor.CanReassignBarber() {
			return nil, httperr.ErrForbidden("Solo un gestore può riassegnare il barbiere.")
		}
		newBarber, err := uc.repo.GetUserByID(ctx, *in.BarberID)
		if err != nil {
			if httperr.IsNotFound(err) {
				return nil, httperr.ErrNotFound("barber")
			}
			return nil, err
		}
		if !newBarber.IsBarber() {
			return nil, httperr.ErrValidation("not_a_barber", "L'utente specificato non è un barbiere.")
		}
		ap.BarberID = newBarber.ID
		ap.BarberShopID = newBarber.BarberShopID
		rescheduled = true
	}

	if in.Date != nil || in.Time != nil {
		dateStr := oldDate
		if in.Date != nil {
			dateStr = *in.Date
		}

		timeStr := ap.StartHHMM()
		if in.Time != nil {
			timeStr = *in.Time
		}

		hhmm, err := domain.NormalizeTime(timeStr)
		if err != nil {
			return nil, err
		}

		start, err := domain.CombineDateTime(dateStr, hhmm, clock.Location())
		if err != nil {
			return nil, err
		}

		if start.Before(clock.Now()) {
			return nil, httperr.ErrValidation("past", "Non puoi spostare un appuntamento nel passato.")
		}

		ap.AppointmentDate = start
		rescheduled = true
	}

	if in.ServiceType != nil {
		ap.ServiceType = *in.ServiceType
		newDuration := uc.durations.DurationFor(*in.ServiceType)
		if newDuration != ap.Duration {
			ap.Duration = newDuration
			rescheduled = true
		}
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.Status != nil && *in.Status != ap.Status {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ErrValidation("invalid_status", "Stato non valido.")
		}

		// Cancelling and completing go through the same transition guards
		// and timestamps as the dedicated use cases.
		switch domain.Status(*in.Status) {
		case domain.StatusCancelled:
			if err := domain.Cancel(ap, clock.Now()); err != nil {
				return nil, err
			}
		case domain.StatusCompleted:
			if err := domain.Complete(ap, clock.Now()); err != nil {
				return nil, err
			}
		default:
			ap.Status = *in.Status
		}
	}

	// A moved or resized interval goes through the conflict-checked write,
	// which excludes the appointment itself from the check.
	if rescheduled {
		err = uc.repo.RescheduleAppointment(ctx, ap)
	} else {
		err = uc.repo.SaveAppointment(ctx, ap)
	}
	if err != nil {
		return nil, err
	}

	newDate := ap.AppointmentDate.Format("2006-01-02")
	uc.cache.Invalidate(ctx, oldBarberID, oldDate)
	uc.cache.Invalidate(ctx, ap.BarberID, newDate)

	var actorID *uint
	if in.Actor.Authenticated {
		id := in.Actor.ID
		actorID = &id
	}
	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.BarberShopID,
		UserID:   actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
