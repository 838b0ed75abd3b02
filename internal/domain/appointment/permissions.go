package appointment

import (
	"strings"

	"github.com/barberbook/api/internal/models"
)

// Actor is whoever is performing an operation. Unauthenticated callers may
// still claim a guest booking by presenting the booking's contact email.
type Actor struct {
	ID            uint
	Role          string
	ShopID        *uint
	Authenticated bool
	GuestEmail    string
}

// UpdateScope says which fields the actor may touch on an appointment.
type UpdateScope int

const (
	ScopeNone UpdateScope = iota

	// ScopeClient: date, time and notes only, while the appointment is
	// still pending.
	ScopeClient

	// ScopeStaff: all fields including status, service type and (for
	// managers/admins) the assigned barber.
	ScopeStaff
)

func (a Actor) isElevated() bool {
	return a.Authenticated && (a.Role == models.RoleManager || a.Role == models.RoleAdmin)
}

func (a Actor) ownsAsClient(ap *models.Appointment) bool {
	if a.Authenticated {
		return ap.UserID != nil && *ap.UserID == a.ID
	}
	return a.GuestEmail != "" &&
		strings.EqualFold(a.GuestEmail, ap.ClientEmail)
}

func (a Actor) isAssignedBarber(ap *models.Appointment) bool {
	return a.Authenticated && a.Role == models.RoleBarber && a.ID == ap.BarberID
}

func (a Actor) CanView(ap *models.Appointment) bool {
	return a.ownsAsClient(ap) || a.isAssignedBarber(ap) || a.isElevated()
}

// ScopeFor resolves the update permission matrix: the owning client (only
// while status=pending), the assigned barber, or a manager/admin.
func (a Actor) ScopeFor(ap *models.Appointment) UpdateScope {
	if a.isAssignedBarber(ap) || a.isElevated() {
		return ScopeStaff
	}
	if a.ownsAsClient(ap) && Status(ap.Status) == StatusPending {
		return ScopeClient
	}
	return ScopeNone
}

func (a Actor) CanCancel(ap *models.Appointment) bool {
	return a.ScopeFor(ap) != ScopeNone
}

func (a Actor) CanDelete(ap *models.Appointment) bool {
	if a.isElevated() {
		return true
	}
	return a.ownsAsClient(ap) && Status(ap.Status) == StatusPending
}

// CanReassignBarber: moving an appointment to another barber stays a
// manager/admin operation.
func (a Actor) CanReassignBarber() bool {
	return a.isElevated()
}
