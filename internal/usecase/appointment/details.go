package appointment

import (
	"context"

	"github.com/barberbook/api/internal/clock"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/models"
)

type GetAppointmentDetails struct {
	repo domain.Repository
}

func NewGetAppointmentDetails(repo domain.Repository) *GetAppointmentDetails {
	return &GetAppointmentDetails{repo: repo}
}

// Execute looks up the appointment occupying a (barber, date, time) slot.
// The time input goes through the same normalization the booking path
// uses. An empty slot is not an error: found comes back false.
func (uc *GetAppointmentDetails) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
	timeStr string,
) (*models.Appointment, bool, error) {

	hhmm, err := domain.NormalizeTime(timeStr)
	if err != nil {
		return nil, false, err
	}

	date, err := domain.ParseDate(dateStr, clock.Location())
	if err != nil {
		return nil, false, err
	}

	dayStart, dayEnd := domain.DayBounds(date)
	appointments, err := uc.repo.ListAppointmentsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, false, err
	}

	for i := range appointments {
		if appointments[i].StartHHMM() == hhmm {
			return &appointments[i], true, nil
		}
	}
	return nil, false, nil
}
