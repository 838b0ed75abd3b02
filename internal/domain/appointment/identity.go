package appointment

import (
	"strings"

	"github.com/barberbook/api/internal/httperr"
)

// ClientIdentity is the booking client: either a registered user reference
// or free-text guest contact data, never both and never neither. The
// constructors are the only way to build a valid value.

type ClientIdentity struct {
	userID *uint

	name  string
	email string
	phone string
}

func RegisteredClient(userID uint) ClientIdentity {
	id := userID
	return ClientIdentity{userID: &id}
}

func GuestClient(name, email, phone string) (ClientIdentity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || phone == "" {
		return ClientIdentity{}, httperr.ErrValidation(
			"missing_client_fields",
			"Nome, email e telefono sono obbligatori per le prenotazioni senza account.",
		)
	}

	return ClientIdentity{name: name, email: email, phone: phone}, nil
}

func (ci ClientIdentity) IsZero() bool {
	return ci.userID == nil && ci.name == ""
}

func (ci ClientIdentity) Registered() (uint, bool) {
	if ci.userID == nil {
		return 0, false
	}
	return *ci.userID, true
}

func (ci ClientIdentity) Guest() (name, email, phone string) {
	return ci.name, ci.email, ci.phone
}
