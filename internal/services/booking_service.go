package services

import (
	"context"
	"fmt"

	"booking-service/internal/domain"
	"booking-service/internal/domain/models"
	"booking-service/internal/utils"
)

// BookingStore is the persistence contract the service needs.
type BookingStore interface {
	Create(ctx context.Context, in models.BookingInput) (models.Booking, error)
	Get(ctx context.Context, id, clientID string) (models.Booking, bool, error)
	UpdateStatus(ctx context.Context, id, clientID string, status domain.Status) (models.Booking, error)
	ListByProvider(ctx context.Context, providerUserSub string) ([]models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
}

// TimeslotUpdater changes the availability of a timeslot owned by another
// service. associatedID nil clears the link to a booking.
type TimeslotUpdater interface {
	SetTimeslotStatus(ctx context.Context, providerUserSub, timeslotID, status string, associatedID *string) error
}

// BookingService keeps the booking record and the remote timeslot state in a
// known relationship. Reserving the slot on create is required; releasing it
// on cancel is best effort.
type BookingService struct {
	Store     BookingStore
	Timeslots TimeslotUpdater
}

func NewBookingService(store BookingStore, timeslots TimeslotUpdater) BookingService {
	return BookingService{Store: store, Timeslots: timeslots}
}

// CreateBooking persists the record, then marks the timeslot booked with the
// new booking id. When the timeslot call fails the record stays in the store
// and a domain.TimeslotSyncError is returned.
func (s BookingService) CreateBooking(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	if in.Status == "" {
		in.Status = models.StatusPending
	}

	b, err := s.Store.Create(ctx, in)
	if err != nil {
		utils.LogCtxError(ctx, "booking", "create", "failed to persist booking client="+in.ClientID, err)
		return models.Booking{}, err
	}
	utils.LogCtx(ctx, "booking", "create", "booking created id="+b.ID)

	id := b.ID
	if err := s.Timeslots.SetTimeslotStatus(ctx, b.ProviderUserSub, b.TimeslotID, models.TimeslotBooked, &id); err != nil {
		utils.LogCtxError(ctx, "booking", "create",
			fmt.Sprintf("timeslot reservation failed id=%s timeslot=%s", b.ID, b.TimeslotID), err)
		return models.Booking{}, domain.TimeslotSyncError{BookingID: b.ID, ClientID: b.ClientID, Err: err}
	}
	utils.LogCtx(ctx, "booking", "create", "timeslot reserved timeslot="+b.TimeslotID)

	return b, nil
}

func (s BookingService) GetBooking(ctx context.Context, id, clientID string) (models.Booking, error) {
	b, found, err := s.Store.Get(ctx, id, clientID)
	if err != nil {
		return models.Booking{}, err
	}
	if !found {
		return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
	}
	utils.LogCtx(ctx, "booking", "get", fmt.Sprintf("booking retrieved id=%s client=%s", id, clientID))
	return b, nil
}

// UpdateBookingStatus changes status on an existing booking. A cancellation
// also tries to release the timeslot; that failure is logged and never
// returned.
func (s BookingService) UpdateBookingStatus(ctx context.Context, id, clientID string, status domain.Status) (models.Booking, error) {
	if !models.IsUpdatable(status) {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "must be one of [confirmed, cancelled, completed]"}
	}

	existing, found, err := s.Store.Get(ctx, id, clientID)
	if err != nil {
		return models.Booking{}, err
	}
	if !found {
		return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
	}

	updated, err := s.Store.UpdateStatus(ctx, id, clientID, status)
	if err != nil {
		utils.LogCtxError(ctx, "booking", "update_status", "failed to update id="+id, err)
		return models.Booking{}, err
	}
	utils.LogCtx(ctx, "booking", "update_status", fmt.Sprintf("status updated id=%s status=%s", id, status))

	if status == models.StatusCancelled {
		if err := s.Timeslots.SetTimeslotStatus(ctx, existing.ProviderUserSub, existing.TimeslotID, models.TimeslotAvailable, nil); err != nil {
			utils.LogCtxError(ctx, "booking", "update_status",
				fmt.Sprintf("timeslot release failed id=%s timeslot=%s", id, existing.TimeslotID), err)
		} else {
			utils.LogCtx(ctx, "booking", "update_status", "timeslot released timeslot="+existing.TimeslotID)
		}
	}

	return updated, nil
}

// GetBookingsByProvider returns an empty slice when nothing matches.
func (s BookingService) GetBookingsByProvider(ctx context.Context, providerUserSub string) ([]models.Booking, error) {
	out, err := s.Store.ListByProvider(ctx, providerUserSub)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		utils.LogCtx(ctx, "booking", "list_provider", "no bookings for provider="+providerUserSub)
		return []models.Booking{}, nil
	}
	utils.LogCtx(ctx, "booking", "list_provider", fmt.Sprintf("provider=%s count=%d", providerUserSub, len(out)))
	return out, nil
}

func (s BookingService) GetBookingsByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	out, err := s.Store.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Booking{}
	}
	utils.LogCtx(ctx, "booking", "list_client", fmt.Sprintf("client=%s count=%d", clientID, len(out)))
	return out, nil
}
