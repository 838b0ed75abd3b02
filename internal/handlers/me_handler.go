package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/httpresp"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

func (h *MeHandler) Me(c *gin.Context) {
	actor := actorFrom(c, "")
	if !actor.Authenticated {
		httperr.Unauthorized(c, "unauthenticated", "Autenticazione richiesta.")
		return
	}

	user, err := h.repo.GetUserByID(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
		"shop_id": user.BarberShopID,
	})
}
