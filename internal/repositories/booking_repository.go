package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	intdb "booking-service/internal/db"
	"booking-service/internal/domain"
	"booking-service/internal/domain/models"
	"booking-service/internal/utils"

	"github.com/google/uuid"
)

const bookingColumns = `id, client_id, provider_user_sub, timeslot_id, service_id, status, notes, created_at, updated_at`

type BookingRepository struct {
	DB    *sql.DB
	Table string

	// Now and NewID are replaceable in tests.
	Now   func() time.Time
	NewID func() string
}

func NewBookingRepository(db *sql.DB, table string) BookingRepository {
	return BookingRepository{DB: db, Table: table}
}

func (r BookingRepository) now() string {
	if r.Now != nil {
		return utils.FormatISO(r.Now())
	}
	return utils.FormatISO(utils.NowUTC())
}

func (r BookingRepository) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

func (r BookingRepository) table() (string, error) {
	name := r.Table
	if name == "" {
		name = "bookings"
	}
	return intdb.QuoteIdent(name)
}

// Create assigns a fresh id, stamps both timestamps and writes the record.
func (r BookingRepository) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	t, err := r.table()
	if err != nil {
		return models.Booking{}, domain.StoreError{Op: "put", Err: err}
	}
	ts := r.now()
	b := models.Booking{
		ID:              r.newID(),
		ClientID:        in.ClientID,
		ProviderUserSub: in.ProviderUserSub,
		TimeslotID:      in.TimeslotID,
		ServiceID:       in.ServiceID,
		Status:          in.Status,
		Notes:           in.Notes,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}

	_, err = r.DB.ExecContext(ctx, `INSERT INTO `+t+` (`+bookingColumns+`) VALUES (?,?,?,?,?,?,?,?,?)`,
		b.ID, b.ClientID, b.ProviderUserSub, b.TimeslotID, b.ServiceID, string(b.Status),
		intdb.NullableString(b.Notes), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, domain.StoreError{Op: "put", Err: err}
	}
	return b, nil
}

// Get is a point lookup. found is false when no row matches; err is reserved
// for store failures.
func (r BookingRepository) Get(ctx context.Context, id, clientID string) (b models.Booking, found bool, err error) {
	t, err := r.table()
	if err != nil {
		return models.Booking{}, false, domain.StoreError{Op: "get", Err: err}
	}
	row := r.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM `+t+` WHERE id=? AND client_id=? LIMIT 1`, id, clientID)
	b, err = scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, false, nil
	}
	if err != nil {
		return models.Booking{}, false, domain.StoreError{Op: "get", Err: err}
	}
	return b, true, nil
}

// UpdateStatus sets status and refreshes updated_at, then returns every
// attribute as stored after the write. Existence is not checked here.
func (r BookingRepository) UpdateStatus(ctx context.Context, id, clientID string, status domain.Status) (models.Booking, error) {
	t, err := r.table()
	if err != nil {
		return models.Booking{}, domain.StoreError{Op: "update", Err: err}
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.StoreError{Op: "update", Err: err}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE `+t+` SET status=?, updated_at=? WHERE id=? AND client_id=?`,
		string(status), r.now(), id, clientID); err != nil {
		_ = tx.Rollback()
		return models.Booking{}, domain.StoreError{Op: "update", Err: err}
	}
	b, err := scanBooking(tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM `+t+` WHERE id=? AND client_id=? LIMIT 1`, id, clientID))
	if err != nil {
		_ = tx.Rollback()
		return models.Booking{}, domain.StoreError{Op: "update", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.StoreError{Op: "update", Err: err}
	}
	return b, nil
}

// ListByProvider queries ProviderIndex. Results are ordered by id.
func (r BookingRepository) ListByProvider(ctx context.Context, providerUserSub string) ([]models.Booking, error) {
	return r.queryIndex(ctx, intdb.ProviderIndex, "provider_user_sub", providerUserSub)
}

// ListByClient queries ClientIndex. Results are ordered by id.
func (r BookingRepository) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return r.queryIndex(ctx, intdb.ClientIndex, "client_id", clientID)
}

func (r BookingRepository) queryIndex(ctx context.Context, index, column, value string) ([]models.Booking, error) {
	t, err := r.table()
	if err != nil {
		return nil, domain.StoreError{Op: "query", Err: err}
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM `+t+` USE INDEX (`+index+`) WHERE `+column+`=? ORDER BY id`, value)
	if err != nil {
		return nil, domain.StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	out := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.StoreError{Op: "query", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError{Op: "query", Err: err}
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (models.Booking, error) {
	var (
		b      models.Booking
		status string
		notes  sql.NullString
	)
	if err := s.Scan(
		&b.ID,
		&b.ClientID,
		&b.ProviderUserSub,
		&b.TimeslotID,
		&b.ServiceID,
		&status,
		&notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.Status(status)
	if notes.Valid {
		n := notes.String
		b.Notes = &n
	}
	return b, nil
}
