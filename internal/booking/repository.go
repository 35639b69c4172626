package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Internal sentinels for the two constraint violations Create can hit. The
// service layer turns them into a reference retry or ErrRoomNotAvailable.
var (
	errDuplicateReference = errors.New("booking reference already exists")
	errOverlapExcluded    = errors.New("overlapping reservation rejected by exclusion constraint")
)

// Repository defines methods for accessing booking data.
type Repository interface {
	// Create inserts a booking. A unique violation on the reference column
	// surfaces as errDuplicateReference; the (room_id, bed_id, daterange)
	// exclusion constraint surfaces as errOverlapExcluded.
	Create(ctx context.Context, b *Booking) error
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// UpdateStatus persists a transition guarded on the expected current
	// status; it reports whether the guarded row matched.
	UpdateStatus(ctx context.Context, b *Booking, from Status) (bool, error)
	AppendEvent(ctx context.Context, e *Event) error
	ListEvents(ctx context.Context, bookingID int64) ([]*Event, error)

	ReservationSource
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new booking repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.hotel_bookings").
		Columns("reference", "hotel_id", "room_id", "bed_id", "accommodation_id",
			"guest_name", "guests", "check_in", "check_out", "status",
			"payment_status", "created_by").
		Values(b.Reference, b.HotelID, b.RoomID, b.BedID, b.AccommodationID,
			b.GuestName, b.Guests, b.CheckIn, b.CheckOut, string(b.Status),
			string(b.PaymentStatus), b.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return errDuplicateReference
			case pgerrcode.ExclusionViolation:
				return errOverlapExcluded
			}
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

var bookingColumns = []string{
	"id", "reference", "hotel_id", "room_id", "bed_id", "accommodation_id",
	"guest_name", "guests", "check_in", "check_out", "status", "payment_status",
	"created_by", "confirmed_at", "checked_in_at", "checked_in_by",
	"checked_out_at", "checked_out_by", "cancelled_at", "cancelled_by",
	"cancel_reason", "refund_cents", "created_at", "updated_at",
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var (
		b             Booking
		status        string
		paymentStatus string
	)
	dest := []any{
		&b.ID, &b.Reference, &b.HotelID, &b.RoomID, &b.BedID, &b.AccommodationID,
		&b.GuestName, &b.Guests, &b.CheckIn, &b.CheckOut, &status, &paymentStatus,
		&b.CreatedBy, &b.ConfirmedAt, &b.CheckedInAt, &b.CheckedInBy,
		&b.CheckedOutAt, &b.CheckedOutBy, &b.CancelledAt, &b.CancelledBy,
		&b.CancelReason, &b.RefundCents, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.Status = Status(status)
	b.PaymentStatus = PaymentStatus(paymentStatus)
	return &b, nil
}

func (r *pgxRepository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.hotel_bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns := append(append([]string{}, bookingColumns...), "count(*) OVER() AS total_count")
	queryBuilder := psql.Select(columns...).
		From("public.hotel_bookings").
		OrderBy("check_in DESC", "id DESC")

	if filter.HotelID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"hotel_id": filter.HotelID})
	}
	if filter.RoomID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"room_id": filter.RoomID})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}
	// Date window filtering, intersection semantics.
	if filter.From != nil {
		queryBuilder = queryBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}
	if filter.To != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"check_in": *filter.To})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, b *Booking, from Status) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hotel_bookings").
		Set("status", string(b.Status)).
		Set("payment_status", string(b.PaymentStatus)).
		Set("confirmed_at", b.ConfirmedAt).
		Set("checked_in_at", b.CheckedInAt).
		Set("checked_in_by", b.CheckedInBy).
		Set("checked_out_at", b.CheckedOutAt).
		Set("checked_out_by", b.CheckedOutBy).
		Set("cancelled_at", b.CancelledAt).
		Set("cancelled_by", b.CancelledBy).
		Set("cancel_reason", b.CancelReason).
		Set("refund_cents", b.RefundCents).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		Where(squirrel.Eq{"status": string(from)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update booking status failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// HoldingReferences returns references of reservations on the unit whose
// status holds inventory and whose [check_in, check_out) range overlaps the
// requested one. The unit is (room_id, bed_id): a nil bedID matches rows
// with bed_id IS NULL only. Overlap is (existing.check_in <
// requested.check_out AND requested.check_in < existing.check_out),
// half-open.
func (r *pgxRepository) HoldingReferences(ctx context.Context, roomID int64, bedID *int64, checkIn, checkOut time.Time) ([]string, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select("reference").
		From("public.hotel_bookings").
		Where(squirrel.Eq{"room_id": roomID})
	if bedID == nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"bed_id": nil})
	} else {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"bed_id": *bedID})
	}
	query, args, err := queryBuilder.
		Where(squirrel.Eq{"status": []string{
			string(StatusPending), string(StatusConfirmed), string(StatusCheckedIn),
		}}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn}).
		OrderBy("check_in").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build holding references query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("holding references failed: %w", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scan reference failed: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *pgxRepository) AppendEvent(ctx context.Context, e *Event) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.booking_events").
		Columns("booking_id", "from_status", "to_status", "actor", "note").
		Values(e.BookingID, string(e.FromStatus), string(e.ToStatus), e.Actor, e.Note).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build append event query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt)
}

func (r *pgxRepository) ListEvents(ctx context.Context, bookingID int64) ([]*Event, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "booking_id", "from_status", "to_status", "actor", "note", "created_at").
		From("public.booking_events").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events failed: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var (
			e        Event
			from, to string
		)
		if err := rows.Scan(&e.ID, &e.BookingID, &from, &to, &e.Actor, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event failed: %w", err)
		}
		e.FromStatus = Status(from)
		e.ToStatus = Status(to)
		events = append(events, &e)
	}
	return events, rows.Err()
}
