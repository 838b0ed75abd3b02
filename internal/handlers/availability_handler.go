package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/api/internal/httperr"
	ucAppointment "github.com/barberbook/api/internal/usecase/appointment"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type AvailabilityHandler struct {
	availability *ucAppointment.GetAvailability
	details      *ucAppointment.GetAppointmentDetails
}

func NewAvailabilityHandler(
	availability *ucAppointment.GetAvailability,
	details *ucAppointment.GetAppointmentDetails,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		details:      details,
	}
}

// GetSlots answers GET /available-slots?barber_id=...&date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	barberID, ok := queryID(c, "barber_id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Parametri mancanti: barber_id e date sono obbligatori.")
		return
	}
	if !dateRe.MatchString(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Formato data non valido. Usa il formato YYYY-MM-DD.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetDetails answers GET /appointment-details?barber_id=...&date=...&time=...
// with found=false when the slot is empty.
func (h *AvailabilityHandler) GetDetails(c *gin.Context) {
	barberID, ok := queryID(c, "barber_id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	timeStr := c.Query("time")
	if dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Parametri mancanti: barber_id, date e time sono obbligatori.")
		return
	}
	if !dateRe.MatchString(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Formato data non valido. Usa il formato YYYY-MM-DD.")
		return
	}

	ap, found, err := h.details.Execute(c.Request.Context(), barberID, dateStr, timeStr)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if !found {
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "Nessun appuntamento per questo barbiere in questa data e orario.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"appointment": gin.H{
			"id":           ap.ID,
			"client_name":  ap.ClientName,
			"client_email": ap.ClientEmail,
			"client_phone": ap.ClientPhone,
			"service_type": ap.ServiceType,
			"notes":        ap.Notes,
			"status":       ap.Status,
			"duration":     ap.Duration,
			"date":         ap.AppointmentDate.Format("2006-01-02"),
			"time":         ap.StartHHMM(),
		},
	})
}

func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, "missing_params", "Parametro mancante: "+name+".")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parametro non valido: "+name+".")
		return 0, false
	}
	return uint(id), true
}
