package handlers

import (
	"errors"
	"log"
	"net/http"

	"booking-service/internal/domain"
	"booking-service/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponder maps domain errors to HTTP responses. Unknown errors become
// 500 and their text reaches the client only when ShowDetails is set.
type ErrorResponder struct {
	ShowDetails bool
}

func (r ErrorResponder) Respond(c *gin.Context, err error) {
	reqID := middleware.GetRequestID(c)

	status, known := statusFor(err)
	if known {
		log.Printf("[ERROR] request_id=%s status=%d type=%T msg=%q", reqID, status, err, err.Error())
		respondFail(c, status, err.Error(), nil)
		return
	}

	var syncErr domain.TimeslotSyncError
	if errors.As(err, &syncErr) {
		log.Printf("[ERROR] request_id=%s status=500 booking=%s partial create: %v", reqID, syncErr.BookingID, err)
		respondFail(c, http.StatusInternalServerError, err.Error(), gin.H{
			"id":       syncErr.BookingID,
			"clientId": syncErr.ClientID,
		})
		return
	}

	log.Printf("[ERROR] request_id=%s status=500 unknown error: %+v", reqID, err)
	msg := "Internal server error"
	if r.ShowDetails {
		msg = err.Error()
	}
	respondFail(c, http.StatusInternalServerError, msg, nil)
}

func statusFor(err error) (int, bool) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, true
	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, true
	case domain.IsForbidden(err):
		return http.StatusForbidden, true
	case domain.IsNotFound(err):
		return http.StatusNotFound, true
	case domain.IsConflict(err):
		return http.StatusConflict, true
	}
	return 0, false
}
