package appointment

import (
	"context"

	"github.com/barberbook/api/internal/audit"
	"github.com/barberbook/api/internal/cache"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	slotCache *cache.Availability,
	dispatcher *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, cache: slotCache, audit: dispatcher}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if !actor.CanDelete(ap) {
		return httperr.ErrForbidden("Non autorizzato a eliminare questo appuntamento.")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, ap.BarberID, ap.AppointmentDate.Format("2006-01-02"))

	var actorID *uint
	if actor.Authenticated {
		id := actor.ID
		actorID = &id
	}
	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.BarberShopID,
		UserID:   actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
