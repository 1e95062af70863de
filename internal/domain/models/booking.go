package models

import "booking-service/internal/domain"

const (
	StatusPending   domain.Status = "pending"
	StatusConfirmed domain.Status = "confirmed"
	StatusCancelled domain.Status = "cancelled"
	StatusCompleted domain.Status = "completed"
)

// Timeslot states understood by the timeslot service.
const (
	TimeslotBooked    = "booked"
	TimeslotAvailable = "available"
)

// Booking is the stored reservation record. Timestamps are ISO-8601 strings.
type Booking struct {
	ID              string        `json:"id"`
	ClientID        string        `json:"clientId"`
	ProviderUserSub string        `json:"providerUserSub"`
	TimeslotID      string        `json:"timeslotId"`
	ServiceID       string        `json:"serviceId"`
	Status          domain.Status `json:"status"`
	Notes           *string       `json:"notes,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

// BookingInput is the create payload after validation. An empty Status
// means the caller did not send one.
type BookingInput struct {
	ClientID        string
	ProviderUserSub string
	TimeslotID      string
	ServiceID       string
	Status          domain.Status
	Notes           *string
}

// CreateBookingRequest is the POST body. Status is a pointer so an explicit
// "" is rejected while an absent field defaults later.
type CreateBookingRequest struct {
	ClientID        string         `json:"clientId" binding:"required"`
	ProviderUserSub string         `json:"providerUserSub" binding:"required"`
	TimeslotID      string         `json:"timeslotId" binding:"required"`
	ServiceID       string         `json:"serviceId" binding:"required"`
	Status          *domain.Status `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes           *string        `json:"notes"`
}

func (r CreateBookingRequest) Input() BookingInput {
	in := BookingInput{
		ClientID:        r.ClientID,
		ProviderUserSub: r.ProviderUserSub,
		TimeslotID:      r.TimeslotID,
		ServiceID:       r.ServiceID,
		Notes:           r.Notes,
	}
	if r.Status != nil {
		in.Status = *r.Status
	}
	return in
}

// StatusUpdate is the body of a status change. pending is not a target.
type StatusUpdate struct {
	Status domain.Status `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}

// IsUpdatable reports whether s may be set through a status update.
func IsUpdatable(s domain.Status) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
