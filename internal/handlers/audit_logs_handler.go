package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/api/internal/audit"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/httpresp"
	"github.com/barberbook/api/internal/models"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

// List is staff-only: admins see everything, managers only their shop.
func (h *AuditLogsHandler) List(c *gin.Context) {
	actor := actorFrom(c, "")
	if !actor.Authenticated {
		httperr.Unauthorized(c, "unauthenticated", "Autenticazione richiesta.")
		return
	}

	var shopID *uint
	switch actor.Role {
	case models.RoleAdmin:
		if raw := c.Query("shop_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				httperr.BadRequest(c, "invalid_shop_id", "Parametro non valido: shop_id.")
				return
			}
			v := uint(id)
			shopID = &v
		}
	case models.RoleManager:
		if actor.ShopID == nil {
			httperr.Forbidden(c, "not_authorized", "Non autorizzato.")
			return
		}
		shopID = actor.ShopID
	default:
		httperr.Forbidden(c, "not_authorized", "Non autorizzato.")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.logger.List(shopID, limit)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Impossibile leggere il registro.")
		return
	}

	httpresp.List(c, entries)
}
