package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
)

func TestCreateAppointment_Guest(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "10:00",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, 30, ap.Duration)
	assert.Equal(t, "10:00", ap.StartHHMM())
	assert.Nil(t, ap.UserID)
	assert.Equal(t, "Mario Rossi", ap.ClientName)
	assert.Equal(t, "mario@example.com", ap.ClientEmail)
	require.NotNil(t, ap.BarberShopID)
	assert.Equal(t, uint(1), *ap.BarberShopID)
}

func TestCreateAppointment_RegisteredCopiesContact(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	customer := seedCustomer(repo)
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "11:00",
		ServiceType: "taglio + barba",
		Client:      domain.RegisteredClient(customer.ID),
	})
	require.NoError(t, err)

	require.NotNil(t, ap.UserID)
	assert.Equal(t, customer.ID, *ap.UserID)
	assert.Equal(t, customer.Name, ap.ClientName)
	assert.Equal(t, customer.Email, ap.ClientEmail)
	assert.Equal(t, customer.Phone, ap.ClientPhone)
	assert.Equal(t, 45, ap.Duration)
}

func TestCreateAppointment_UnknownRegisteredUser(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "11:00",
		ServiceType: "taglio",
		Client:      domain.RegisteredClient(999),
	})
	assert.True(t, httperr.IsValidation(err, "invalid_user"))
}

func TestCreateAppointment_MissingClient(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "11:00",
		ServiceType: "taglio",
	})
	assert.True(t, httperr.IsValidation(err, "missing_client"))
}

func TestCreateAppointment_NormalizesLooseTime(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "9",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", ap.StartHHMM())
}

func TestCreateAppointment_PastRejected(t *testing.T) {
	pinClock(t) // now = 2026-09-01 08:00
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-08-31",
		Time:        "10:00",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	assert.True(t, httperr.IsValidation(err, "past"))
}

func TestCreateAppointment_BarberChecks(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	customer := seedCustomer(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    999,
		Date:        "2026-09-15",
		Time:        "10:00",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	assert.True(t, httperr.IsNotFound(err))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    customer.ID,
		Date:        "2026-09-15",
		Time:        "10:00",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	assert.True(t, httperr.IsValidation(err, "not_a_barber"))
}

func TestCreateAppointment_OverlapConflict(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "10:00",
		ServiceType: "taglio + barba", // 45 min, blocks 10:00-10:45
		Client:      guestIdentity(t),
	})
	require.NoError(t, err)

	// 10:30 starts inside the first booking's interval.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "10:30",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	ce, ok := httperr.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, first.ID, ce.AppointmentID)
	assert.Equal(t, "10:00", ce.Time)

	// Back to back is fine.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		BarberID:    10,
		Date:        "2026-09-15",
		Time:        "10:45",
		ServiceType: "taglio",
		Client:      guestIdentity(t),
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_ConcurrentSingleWinner(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	uc := newCreateUC(repo)

	const attempts = 16
	client := guestIdentity(t)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), CreateAppointmentInput{
				BarberID:    10,
				Date:        "2026-09-15",
				Time:        "10:00",
				ServiceType: "taglio",
				Client:      client,
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		_, ok := httperr.AsConflict(err)
		assert.True(t, ok, "losers must get a conflict, got %v", err)
	}
	assert.Equal(t, 1, winners)
}
