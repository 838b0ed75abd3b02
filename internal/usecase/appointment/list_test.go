package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

// seedListFixture: two barbers in shop 1, one registered customer with a
// booking per barber plus a guest booking.
func seedListFixture(t *testing.T, repo *memRepo) {
	t.Helper()
	seedShopAndBarber(repo)
	repo.addUser(models.User{
		ID:           11,
		Name:         "Pia Neri",
		Role:         models.RoleBarber,
		BarberShopID: uintPtr(1),
	})
	customer := seedCustomer(repo)

	create := newCreateUC(repo)
	ctx := context.Background()

	_, err := create.Execute(ctx, CreateAppointmentInput{
		BarberID: 10, Date: "2026-09-15", Time: "10:00",
		ServiceType: "taglio", Client: domain.RegisteredClient(customer.ID),
	})
	require.NoError(t, err)

	_, err = create.Execute(ctx, CreateAppointmentInput{
		BarberID: 11, Date: "2026-09-15", Time: "10:00",
		ServiceType: "taglio", Client: domain.RegisteredClient(customer.ID),
	})
	require.NoError(t, err)

	_, err = create.Execute(ctx, CreateAppointmentInput{
		BarberID: 10, Date: "2026-09-16", Time: "11:00",
		ServiceType: "barba", Client: guestIdentity(t),
	})
	require.NoError(t, err)
}

func TestListForActor_Scoping(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedListFixture(t, repo)
	uc := NewListAppointments(repo)
	ctx := context.Background()

	customer := domain.Actor{ID: 5, Role: models.RoleCustomer, Authenticated: true}
	mine, err := uc.ForActor(ctx, customer, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	barber := domain.Actor{ID: 10, Role: models.RoleBarber, Authenticated: true}
	assigned, err := uc.ForActor(ctx, barber, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, assigned, 2)

	manager := domain.Actor{ID: 20, Role: models.RoleManager, ShopID: uintPtr(1), Authenticated: true}
	shopWide, err := uc.ForActor(ctx, manager, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, shopWide, 3)

	narrowed, err := uc.ForActor(ctx, manager, ListOptions{BarberID: uintPtr(11)})
	require.NoError(t, err)
	assert.Len(t, narrowed, 1)

	admin := domain.Actor{ID: 30, Role: models.RoleAdmin, Authenticated: true}
	all, err := uc.ForActor(ctx, admin, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.ForActor(ctx, domain.Actor{}, ListOptions{})
	assert.True(t, httperr.IsForbidden(err))
}

func TestListForActor_Filters(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedListFixture(t, repo)
	uc := NewListAppointments(repo)
	ctx := context.Background()
	admin := domain.Actor{ID: 30, Role: models.RoleAdmin, Authenticated: true}

	byDay, err := uc.ForActor(ctx, admin, ListOptions{Date: "2026-09-16"})
	require.NoError(t, err)
	assert.Len(t, byDay, 1)

	_, err = uc.ForActor(ctx, admin, ListOptions{Status: "archived"})
	assert.True(t, httperr.IsValidation(err, "invalid_status"))

	pending, err := uc.ForActor(ctx, admin, ListOptions{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestListForBarber(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedListFixture(t, repo)
	uc := NewListAppointments(repo)
	ctx := context.Background()

	self := domain.Actor{ID: 10, Role: models.RoleBarber, Authenticated: true}
	own, err := uc.ForBarber(ctx, self, 10, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, own, 2)

	// Another barber's calendar is off limits.
	_, err = uc.ForBarber(ctx, self, 11, ListOptions{})
	assert.True(t, httperr.IsForbidden(err))

	manager := domain.Actor{ID: 20, Role: models.RoleManager, ShopID: uintPtr(1), Authenticated: true}
	_, err = uc.ForBarber(ctx, manager, 11, ListOptions{})
	assert.NoError(t, err)
}

func TestListForShop(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedListFixture(t, repo)
	uc := NewListAppointments(repo)
	ctx := context.Background()

	manager := domain.Actor{ID: 20, Role: models.RoleManager, ShopID: uintPtr(1), Authenticated: true}
	all, err := uc.ForShop(ctx, manager, 1, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	otherShop := domain.Actor{ID: 21, Role: models.RoleManager, ShopID: uintPtr(2), Authenticated: true}
	_, err = uc.ForShop(ctx, otherShop, 1, ListOptions{})
	assert.True(t, httperr.IsForbidden(err))

	customer := domain.Actor{ID: 5, Role: models.RoleCustomer, Authenticated: true}
	_, err = uc.ForShop(ctx, customer, 1, ListOptions{})
	assert.True(t, httperr.IsForbidden(err))
}

func TestListForBarberMonth(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedListFixture(t, repo)
	uc := NewListAppointments(repo)
	ctx := context.Background()

	self := domain.Actor{ID: 10, Role: models.RoleBarber, Authenticated: true}

	sept, err := uc.ForBarberMonth(ctx, self, 10, 2026, 9)
	require.NoError(t, err)
	assert.Len(t, sept, 2)

	oct, err := uc.ForBarberMonth(ctx, self, 10, 2026, 10)
	require.NoError(t, err)
	assert.Empty(t, oct)

	_, err = uc.ForBarberMonth(ctx, self, 10, 1999, 9)
	assert.True(t, httperr.IsValidation(err, "invalid_year"))

	_, err = uc.ForBarberMonth(ctx, self, 10, 2026, 13)
	assert.True(t, httperr.IsValidation(err, "invalid_month"))
}
