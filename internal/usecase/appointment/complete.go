package appointment

import (
	"context"

	"github.com/barberbook/api/internal/audit"
	"github.com/barberbook/api/internal/clock"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, audit: dispatcher}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// Marking done is a staff action.
	if actor.ScopeFor(ap) != domain.ScopeStaff {
		return nil, httperr.ErrForbidden("Non autorizzato a completare questo appuntamento.")
	}

	if err := domain.Complete(ap, clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	id := actor.ID
	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.BarberShopID,
		UserID:   &id,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
