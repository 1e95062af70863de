package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"booking-service/internal/domain"
	"booking-service/internal/domain/models"
)

type memStore struct {
	mu      sync.Mutex
	seq     int
	rows    map[string]models.Booking
	failPut error
	failGet error
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]models.Booking{}}
}

func key(id, clientID string) string { return id + "|" + clientID }

func (m *memStore) Create(_ context.Context, in models.BookingInput) (models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut != nil {
		return models.Booking{}, domain.StoreError{Op: "put", Err: m.failPut}
	}
	m.seq++
	b := models.Booking{
		ID:              fmt.Sprintf("b-%d", m.seq),
		ClientID:        in.ClientID,
		ProviderUserSub: in.ProviderUserSub,
		TimeslotID:      in.TimeslotID,
		ServiceID:       in.ServiceID,
		Status:          in.Status,
		Notes:           in.Notes,
		CreatedAt:       "2024-05-01T10:00:00.000Z",
		UpdatedAt:       "2024-05-01T10:00:00.000Z",
	}
	m.rows[key(b.ID, b.ClientID)] = b
	return b, nil
}

func (m *memStore) Get(_ context.Context, id, clientID string) (models.Booking, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return models.Booking{}, false, domain.StoreError{Op: "get", Err: m.failGet}
	}
	b, ok := m.rows[key(id, clientID)]
	return b, ok, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id, clientID string, status domain.Status) (models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[key(id, clientID)]
	if !ok {
		return models.Booking{}, domain.StoreError{Op: "update", Err: errors.New("no row")}
	}
	b.Status = status
	b.UpdatedAt = "2024-05-02T10:00:00.000Z"
	m.rows[key(id, clientID)] = b
	return b, nil
}

func (m *memStore) list(match func(models.Booking) bool) []models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.rows {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) ListByProvider(_ context.Context, p string) ([]models.Booking, error) {
	return m.list(func(b models.Booking) bool { return b.ProviderUserSub == p }), nil
}

func (m *memStore) ListByClient(_ context.Context, c string) ([]models.Booking, error) {
	return m.list(func(b models.Booking) bool { return b.ClientID == c }), nil
}

type timeslotCall struct {
	Provider, Timeslot, Status string
	AssociatedID               *string
}

type fakeTimeslots struct {
	calls []timeslotCall
	err   error
}

func (f *fakeTimeslots) SetTimeslotStatus(_ context.Context, p, t, status string, associatedID *string) error {
	f.calls = append(f.calls, timeslotCall{Provider: p, Timeslot: t, Status: status, AssociatedID: associatedID})
	return f.err
}
