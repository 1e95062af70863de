package handlers

import (
	"context"
	"net/http"

	"booking-service/internal/domain"
	"booking-service/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// BookingAPI is the service surface the handlers drive.
type BookingAPI interface {
	CreateBooking(ctx context.Context, in models.BookingInput) (models.Booking, error)
	GetBooking(ctx context.Context, id, clientID string) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, clientID string, status domain.Status) (models.Booking, error)
	GetBookingsByProvider(ctx context.Context, providerUserSub string) ([]models.Booking, error)
	GetBookingsByClient(ctx context.Context, clientID string) ([]models.Booking, error)
}

type BookingHandler struct {
	Service BookingAPI
	Errors  ErrorResponder
}

func NewBookingHandler(svc BookingAPI, errs ErrorResponder) *BookingHandler {
	return &BookingHandler{Service: svc, Errors: errs}
}

// POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := bindBody(c, &req); err != nil {
		h.Errors.Respond(c, err)
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), req.Input())
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Booking created successfully", b)
}

// GET /bookings/id/:id/:clientId
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"), c.Param("clientId"))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Booking retrieved successfully", b)
}

// PUT /bookings/id/:id/:clientId/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var body models.StatusUpdate
	if err := bindBody(c, &body); err != nil {
		h.Errors.Respond(c, err)
		return
	}
	b, err := h.Service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), c.Param("clientId"), body.Status)
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Booking status updated successfully", b)
}

// GET /bookings/provider/:providerUserSub
func (h *BookingHandler) ListByProvider(c *gin.Context) {
	out, err := h.Service.GetBookingsByProvider(c.Request.Context(), c.Param("providerUserSub"))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Provider bookings retrieved successfully", out)
}

// GET /bookings/client/:clientId
func (h *BookingHandler) ListByClient(c *gin.Context) {
	out, err := h.Service.GetBookingsByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Client bookings retrieved successfully", out)
}
