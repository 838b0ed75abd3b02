package appointment

import (
	"context"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/models"
)

// HoursResolver turns a barber id into the opening window that applies to
// them: the barber's own override, else their shop's hours, else the
// system default.
type HoursResolver struct {
	repo domain.Repository
	def  domain.Window
}

func NewHoursResolver(repo domain.Repository, def domain.Window) *HoursResolver {
	return &HoursResolver{repo: repo, def: def}
}

func (r *HoursResolver) Resolve(
	ctx context.Context,
	barberID uint,
) (*models.User, domain.Window, error) {

	barber, err := r.repo.GetUserByID(ctx, barberID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, domain.Window{}, httperr.ErrNotFound("barber")
		}
		return nil, domain.Window{}, err
	}

	if !barber.IsBarber() {
		return nil, domain.Window{}, httperr.ErrValidation(
			"not_a_barber",
			"L'utente specificato non è un barbiere.",
		)
	}

	carriers := []domain.HoursCarrier{barber}
	if barber.BarberShopID != nil {
		if shop, err := r.repo.GetShopByID(ctx, *barber.BarberShopID); err == nil {
			carriers = append(carriers, shop)
		}
	}

	return barber, domain.ResolveWindow(r.def, carriers...), nil
}
