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

type CancelAppointment struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	slotCache *cache.Availability,
	dispatcher *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{repo: repo, cache: slotCache, audit: dispatcher}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !actor.CanCancel(ap) {
		return nil, httperr.ErrForbidden("Non autorizzato ad annullare questo appuntamento.")
	}

	if err := domain.Cancel(ap, clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Cancelling frees the slot in the availability view.
	uc.cache.Invalidate(ctx, ap.BarberID, ap.AppointmentDate.Format("2006-01-02"))

	var actorID *uint
	if actor.Authenticated {
		id := actor.ID
		actorID = &id
	}
	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.BarberShopID,
		UserID:   actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
