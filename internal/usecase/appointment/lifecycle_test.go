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

func TestCancelAppointment(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	ap := bookSlot(t, repo, "10:00")
	uc := NewCancelAppointment(repo, nil, nil)

	cancelled, err := uc.Execute(context.Background(), guestActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// Once cancelled, the client's pending-only scope has lapsed: the
	// guest now gets a permission error, while staff reach the state
	// transition guard.
	_, err = uc.Execute(context.Background(), guestActor(), ap.ID)
	assert.True(t, httperr.IsForbidden(err))

	_, err = uc.Execute(context.Background(), barberActor(), ap.ID)
	assert.True(t, httperr.IsValidation(err, "invalid_state"))
}

func TestCancelAppointment_Permissions(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	ap := bookSlot(t, repo, "10:00")
	uc := NewCancelAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), domain.Actor{GuestEmail: "other@example.com"}, ap.ID)
	assert.True(t, httperr.IsForbidden(err))

	_, err = uc.Execute(context.Background(), domain.Actor{}, ap.ID)
	assert.True(t, httperr.IsForbidden(err))

	_, err = uc.Execute(context.Background(), barberActor(), ap.ID)
	assert.NoError(t, err)
}

func TestCompleteAppointment(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	ap := bookSlot(t, repo, "10:00")
	uc := NewCompleteAppointment(repo, nil)

	// Clients never complete, not even their own booking.
	_, err := uc.Execute(context.Background(), guestActor(), ap.ID)
	assert.True(t, httperr.IsForbidden(err))

	done, err := uc.Execute(context.Background(), barberActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = uc.Execute(context.Background(), barberActor(), ap.ID)
	assert.True(t, httperr.IsValidation(err, "invalid_state"))
}

func TestDeleteAppointment(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	ap := bookSlot(t, repo, "10:00")
	uc := NewDeleteAppointment(repo, nil, nil)

	// The assigned barber may update but not hard-delete.
	err := uc.Execute(context.Background(), barberActor(), ap.ID)
	assert.True(t, httperr.IsForbidden(err))

	// The owning client may, while the booking is still pending.
	err = uc.Execute(context.Background(), guestActor(), ap.ID)
	require.NoError(t, err)

	_, err = repo.GetAppointmentByID(context.Background(), ap.ID)
	assert.True(t, httperr.IsNotFound(err))
}

func TestDeleteAppointment_ConfirmedNeedsElevation(t *testing.T) {
	pinClock(t)
	repo := newMemRepo()
	seedShopAndBarber(repo)
	ap := bookSlot(t, repo, "10:00")

	_, err := newUpdateUC(repo).Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID,
		Actor:         barberActor(),
		Status:        strPtr("confirmed"),
	})
	require.NoError(t, err)

	uc := NewDeleteAppointment(repo, nil, nil)

	err = uc.Execute(context.Background(), guestActor(), ap.ID)
	assert.True(t, httperr.IsForbidden(err))

	admin := domain.Actor{ID: 99, Role: models.RoleAdmin, Authenticated: true}
	err = uc.Execute(context.Background(), admin, ap.ID)
	assert.NoError(t, err)
}
