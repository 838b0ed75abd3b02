package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/dto"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/httpresp"
	"github.com/barberbook/api/internal/media"
	"github.com/barberbook/api/internal/models"
)

// maxImageBytes caps uploaded shop pictures at 8 MiB before decoding.
const maxImageBytes = 8 << 20

type BarberHandler struct {
	repo     domain.Repository
	uploader *media.ShopImageUploader
}

func NewBarberHandler(repo domain.Repository, uploader *media.ShopImageUploader) *BarberHandler {
	return &BarberHandler{repo: repo, uploader: uploader}
}

// ======================================================
// DIRECTORY
// ======================================================

func (h *BarberHandler) ListShops(c *gin.Context) {
	filter := domain.ShopFilter{
		Regione:       c.Query("regione"),
		Provincia:     c.Query("provincia"),
		Comune:        c.Query("comune"),
		OnlyAvailable: c.Query("available") == "true",
	}

	shops, err := h.repo.ListShops(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.ShopList(shops))
}

func (h *BarberHandler) GetShop(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	shop, err := h.repo.GetShopByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.ShopDetail(shop))
}

func (h *BarberHandler) ListBarbers(c *gin.Context) {
	var shopID *uint
	if raw := c.Query("shop_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_shop_id", "Parametro non valido: shop_id.")
			return
		}
		v := uint(id)
		shopID = &v
	}

	barbers, err := h.repo.ListBarbers(c.Request.Context(), shopID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.BarberList(barbers))
}

func (h *BarberHandler) GetBarber(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.repo.GetUserByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !user.IsBarber() {
		httperr.NotFound(c, "barber_not_found", "Barbiere non trovato.")
		return
	}

	barber := dto.BarberList([]models.User{*user})[0]
	httpresp.OK(c, barber)
}

// ======================================================
// SHOP IMAGE
// ======================================================

func (h *BarberHandler) UploadShopImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "upload_disabled", "Caricamento immagini non configurato.")
		return
	}

	shopID, ok := paramID(c)
	if !ok {
		return
	}

	actor := actorFrom(c, "")
	if !canManageShop(actor, shopID) {
		httperr.Forbidden(c, "not_authorized", "Non autorizzato.")
		return
	}

	if _, err := h.repo.GetShopByID(c.Request.Context(), shopID); err != nil {
		httperr.Respond(c, err)
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Nessuna immagine inviata.")
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), shopID, http.MaxBytesReader(c.Writer, file, maxImageBytes))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.UpdateShopImageURL(c.Request.Context(), shopID, url); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Immagine aggiornata con successo",
		"image_url": url,
	})
}

// canManageShop: admins manage every shop, managers only their own.
func canManageShop(actor domain.Actor, shopID uint) bool {
	if !actor.Authenticated {
		return false
	}
	if actor.Role == models.RoleAdmin {
		return true
	}
	return actor.Role == models.RoleManager &&
		actor.ShopID != nil && *actor.ShopID == shopID
}
