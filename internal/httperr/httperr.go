package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`

	// Set only for slot conflicts.
	ConflictID   uint   `json:"conflict_id,omitempty"`
	ConflictTime string `json:"conflict_time,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, ce ConflictError) {
	c.JSON(http.StatusConflict, HTTPError{
		Code:         "slot_conflict",
		Message:      "Questo orario non è più disponibile, è stato prenotato da qualcun altro",
		ConflictID:   ce.AppointmentID,
		ConflictTime: ce.Time,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps a use-case error to its HTTP status. Keeps the per-handler
// switch out of every endpoint.
func Respond(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Code, ve.Message)
		return
	}

	var nf NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Error(), "Risorsa non trovata.")
		return
	}

	if ce, ok := AsConflict(err); ok {
		Conflict(c, ce)
		return
	}

	var ae AuthorizationError
	if errors.As(err, &ae) {
		Forbidden(c, "not_authorized", ae.Message)
		return
	}

	log.Printf("internal error: %v", err)
	Internal(c, "internal_error", "Errore del server.")
}
