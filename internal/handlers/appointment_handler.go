package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/dto"
	"github.com/barberbook/api/internal/httperr"
	"github.com/barberbook/api/internal/httpresp"
	ucAppointment "github.com/barberbook/api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	delete   *ucAppointment.DeleteAppointment
	list     *ucAppointment.ListAppointments
	details  *ucAppointment.GetAppointmentDetails
	repo     domain.Repository
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	del *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	details *ucAppointment.GetAppointmentDetails,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		update:   update,
		cancel:   cancel,
		complete: complete,
		delete:   del,
		list:     list,
		details:  details,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Notes       string `json:"notes"`

	// Registered client, or guest contact fields.
	UserID      *uint  `json:"user_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
}

type UpdateAppointmentRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	ServiceType *string `json:"service_type"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"`
	BarberID    *uint   `json:"barber_id"`

	// Anonymous guests identify themselves with the booking email.
	ClientEmail string `json:"client_email"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati mancanti o non validi.")
		return
	}

	client, err := h.resolveClient(c, &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarberID:    req.BarberID,
		Date:        req.Date,
		Time:        req.Time,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
		Client:      client,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Appuntamento creato con successo",
		"appointment": gin.H{
			"id":           ap.ID,
			"date":         ap.AppointmentDate.Format("2006-01-02"),
			"time":         ap.StartHHMM(),
			"barber_id":    ap.BarberID,
			"service_type": ap.ServiceType,
			"duration":     ap.Duration,
		},
	})
}

// resolveClient picks the single client form: the authenticated user, an
// explicitly referenced user, or the guest contact fields.
func (h *AppointmentHandler) resolveClient(
	c *gin.Context,
	req *CreateAppointmentRequest,
) (domain.ClientIdentity, error) {

	actor := actorFrom(c, "")

	if req.UserID != nil {
		return domain.RegisteredClient(*req.UserID), nil
	}
	if actor.Authenticated {
		return domain.RegisteredClient(actor.ID), nil
	}
	return domain.GuestClient(req.ClientName, req.ClientEmail, req.ClientPhone)
}

// ======================================================
// SHOW / UPDATE / CANCEL / COMPLETE / DELETE
// ======================================================

func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	actor := actorFrom(c, c.Query("client_email"))
	if !actor.CanView(ap) {
		httperr.Forbidden(c, "not_authorized", "Non autorizzato.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati mancanti o non validi.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: id,
		Actor:         actorFrom(c, req.ClientEmail),
		Date:          req.Date,
		Time:          req.Time,
		ServiceType:   req.ServiceType,
		Notes:         req.Notes,
		Status:        req.Status,
		BarberID:      req.BarberID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appuntamento aggiornato con successo",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), actorFrom(c, c.Query("client_email")), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), actorFrom(c, ""), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.delete.Execute(c.Request.Context(), actorFrom(c, c.Query("client_email")), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Appuntamento eliminato con successo",
		"status":  "success",
	})
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	aps, err := h.list.ForActor(c.Request.Context(), actorFrom(c, ""), opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.AppointmentList(aps))
}

func (h *AppointmentHandler) ListForBarber(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	aps, err := h.list.ForBarber(c.Request.Context(), actorFrom(c, ""), barberID, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.AppointmentList(aps))
}

func (h *AppointmentHandler) ListForShop(c *gin.Context) {
	shopID, ok := paramID(c)
	if !ok {
		return
	}
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	aps, err := h.list.ForShop(c.Request.Context(), actorFrom(c, ""), shopID, opts)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.AppointmentList(aps))
}

func (h *AppointmentHandler) ListBarberMonth(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Anno e mese sono obbligatori.")
		return
	}

	aps, err := h.list.ForBarberMonth(c.Request.Context(), actorFrom(c, ""), barberID, year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": dto.AppointmentList(aps),
	})
}

// ======================================================
// HELPERS
// ======================================================

func listOptions(c *gin.Context) (ucAppointment.ListOptions, bool) {
	opts := ucAppointment.ListOptions{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	if opts.Date != "" && !dateRe.MatchString(opts.Date) {
		httperr.BadRequest(c, "invalid_date", "Formato data non valido. Usa il formato YYYY-MM-DD.")
		return opts, false
	}

	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Parametro non valido: barber_id.")
			return opts, false
		}
		barberID := uint(id)
		opts.BarberID = &barberID
	}

	return opts, true
}

func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificativo non valido.")
		return 0, false
	}
	return uint(id), true
}
