package appointment

import (
	"context"

	"github.com/barberbook/api/internal/cache"
	"github.com/barberbook/api/internal/clock"
	domain "github.com/barberbook/api/internal/domain/appointment"
)

type GetAvailability struct {
	repo        domain.Repository
	hours       *HoursResolver
	granularity int
	cache       *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	hours *HoursResolver,
	granularityMin int,
	slotCache *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		hours:       hours,
		granularity: granularityMin,
		cache:       slotCache,
	}
}

// Execute produces the slot view for a barber's day: the candidate grid
// from the opening window, with booked slots annotated from the existing
// appointments.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]domain.Slot, error) {

	date, err := domain.ParseDate(dateStr, clock.Location())
	if err != nil {
		return nil, err
	}

	_, window, err := uc.hours.Resolve(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if slots, ok := uc.cache.Get(ctx, barberID, dateStr); ok {
		return slots, nil
	}

	dayStart, dayEnd := domain.DayBounds(date)
	appointments, err := uc.repo.ListAppointmentsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.Project(domain.GenerateTimes(window, uc.granularity), appointments)

	uc.cache.Set(ctx, barberID, dateStr, slots)
	return slots, nil
}
