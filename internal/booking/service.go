package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel-pms-backend/internal/hotel"
	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/inventory"
	"hotel-pms-backend/internal/pkg/apperror"
	"hotel-pms-backend/internal/pkg/lock"
)

// maxReferenceAttempts bounds the retry loop on booking reference
// collisions; the 4-digit random suffix makes collisions rare, so hitting
// the bound means something is badly wrong.
const maxReferenceAttempts = 5

// CreateRequest defines fields for creating a booking.
type CreateRequest struct {
	HotelID   int64
	RoomID    int64
	BedID     *int64
	GuestName string
	Guests    int
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedBy string
}

// TransitionRequest defines a lifecycle transition. Reason and RefundCents
// are only meaningful when cancelling.
type TransitionRequest struct {
	Reference   string
	Target      Status
	Actor       string
	Reason      string
	RefundCents *int64
}

// Service owns the booking state machine and the availability check that
// guards creation.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// CheckAvailability answers the availability query without reserving.
	CheckAvailability(ctx context.Context, roomID int64, bedID *int64, checkIn, checkOut time.Time) (Availability, error)
	Transition(ctx context.Context, req TransitionRequest) (*Booking, error)
	Events(ctx context.Context, reference string) ([]*Event, error)
}

type service struct {
	repo         Repository
	engine       *AvailabilityEngine
	units        inventory.Service
	hotelService hotel.Service
	locker       lock.Locker
	now          func() time.Time
}

// NewService creates a new booking service.
func NewService(repo Repository, units inventory.Service, hotelService hotel.Service, locker lock.Locker) Service {
	return &service{
		repo:         repo,
		engine:       NewAvailabilityEngine(repo),
		units:        units,
		hotelService: hotelService,
		locker:       locker,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create validates input, checks availability and persists the booking in
// pending state. The per-room advisory lock makes check-then-insert
// serializable against concurrent creates for the same room or its beds;
// the database exclusion constraint backstops it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.GuestName == "" || req.Guests < 1 {
		return nil, ErrInvalidInput
	}

	checkIn, checkOut, err := normalizeRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	if !h.IsActive {
		return nil, hotel.ErrInactive
	}

	unit, err := s.units.ResolveUnit(ctx, req.RoomID, req.BedID)
	if err != nil {
		return nil, err
	}
	if unit.HotelID != h.ID {
		return nil, apperror.WithMessage(ErrInvalidInput, "room does not belong to hotel")
	}

	lockKey := roomLockKey(unit.RoomID)
	acquired, err := s.locker.Acquire(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrUnitBusy
	}
	defer func() {
		if err := s.locker.Release(ctx, lockKey); err != nil {
			log.Warn().Err(err).Str("key", lockKey).Msg("release unit lock failed")
		}
	}()

	avail, err := s.engine.Check(ctx, unit, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, notAvailableErr(avail.Conflicts)
	}

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, err := identity.GenerateBookingReference(h.EntityID(), unit.AccommodationID, checkIn)
		if err != nil {
			return nil, err
		}

		b := &Booking{
			Reference:       ref.String(),
			HotelID:         h.ID,
			RoomID:          unit.RoomID,
			BedID:           unit.BedID,
			AccommodationID: unit.AccommodationID,
			GuestName:       req.GuestName,
			Guests:          req.Guests,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Status:          StatusPending,
			PaymentStatus:   PaymentPending,
			CreatedBy:       req.CreatedBy,
		}

		switch err := s.repo.Create(ctx, b); {
		case err == nil:
			s.audit(ctx, b, "", StatusPending, req.CreatedBy, "created")
			return b, nil
		case errors.Is(err, errDuplicateReference):
			// Random suffix collision, mint a new one.
			continue
		case errors.Is(err, errOverlapExcluded):
			// A concurrent create slipped past the advisory lock; the
			// exclusion constraint is the final authority.
			return nil, ErrRoomNotAvailable
		default:
			return nil, err
		}
	}
	return nil, ErrGenerationExhausted
}

func (s *service) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	if _, ok := identity.ParseBookingReference(reference); !ok {
		return nil, ErrNotFound
	}
	return s.repo.GetByReference(ctx, reference)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) CheckAvailability(ctx context.Context, roomID int64, bedID *int64, checkIn, checkOut time.Time) (Availability, error) {
	checkIn, checkOut, err := normalizeRange(checkIn, checkOut)
	if err != nil {
		return Availability{}, err
	}

	unit, err := s.units.ResolveUnit(ctx, roomID, bedID)
	if err != nil {
		return Availability{}, err
	}
	return s.engine.Check(ctx, unit, checkIn, checkOut)
}

// Transition applies one legal state-machine step. The status update is
// guarded on the expected current status, so a concurrent transition
// surfaces as IllegalTransition with the actual stored status.
func (s *service) Transition(ctx context.Context, req TransitionRequest) (*Booking, error) {
	if !req.Target.Valid() {
		return nil, apperror.WithMessage(ErrInvalidInput, fmt.Sprintf("unknown target status %q", req.Target))
	}

	b, err := s.GetByReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(req.Target) {
		return nil, illegalTransitionErr(b.Status, req.Target)
	}
	if req.Target == StatusNoShow && !s.checkInDatePassed(b) {
		return nil, apperror.WithMessage(ErrIllegalTransition,
			fmt.Sprintf("cannot mark %s no-show before its check-in date has passed", b.Reference))
	}

	from := b.Status
	now := s.now()
	b.Status = req.Target

	switch req.Target {
	case StatusConfirmed:
		b.ConfirmedAt = &now
		b.PaymentStatus = PaymentPaid
	case StatusCheckedIn:
		b.CheckedInAt = &now
		b.CheckedInBy = &req.Actor
	case StatusCheckedOut:
		b.CheckedOutAt = &now
		b.CheckedOutBy = &req.Actor
	case StatusCancelled:
		b.CancelledAt = &now
		b.CancelledBy = &req.Actor
		if req.Reason != "" {
			b.CancelReason = &req.Reason
		}
		if req.RefundCents != nil {
			b.RefundCents = req.RefundCents
			b.PaymentStatus = PaymentRefunded
		}
	}

	matched, err := s.repo.UpdateStatus(ctx, b, from)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost a race: report the status actually stored now.
		current, err := s.repo.GetByReference(ctx, req.Reference)
		if err != nil {
			return nil, err
		}
		return nil, illegalTransitionErr(current.Status, req.Target)
	}

	s.audit(ctx, b, from, req.Target, req.Actor, req.Reason)
	return b, nil
}

func (s *service) Events(ctx context.Context, reference string) ([]*Event, error) {
	b, err := s.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEvents(ctx, b.ID)
}

// checkInDatePassed reports whether the booking's check-in date is strictly
// before today (UTC date granularity).
func (s *service) checkInDatePassed(b *Booking) bool {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return b.CheckIn.Before(today)
}

// audit records the transition in the event table and the log. Event
// persistence failing must not fail the already-committed transition.
func (s *service) audit(ctx context.Context, b *Booking, from, to Status, actor, note string) {
	e := &Event{
		BookingID:  b.ID,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor,
		Note:       note,
	}
	if err := s.repo.AppendEvent(ctx, e); err != nil {
		log.Error().Err(err).Str("reference", b.Reference).Msg("append booking event failed")
	}

	log.Info().
		Str("reference", b.Reference).
		Str("from", string(from)).
		Str("to", string(to)).
		Str("actor", actor).
		Msg("booking transition")
}

func normalizeRange(checkIn, checkOut time.Time) (time.Time, time.Time, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	// Zero-night stays are invalid input, rejected before the engine.
	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return in, out, nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// roomLockKey serializes creates at room granularity. Bed bookings inside
// one dormitory room contend on the same key, which is coarser than needed
// but keeps the lock namespace aligned with the conflict key.
func roomLockKey(roomID int64) string {
	return fmt.Sprintf("lock:room:%d", roomID)
}

func notAvailableErr(conflicts []string) error {
	if len(conflicts) == 0 {
		return ErrRoomNotAvailable
	}
	return apperror.WithMessage(ErrRoomNotAvailable,
		"accommodation not available, conflicts with "+strings.Join(conflicts, ", "))
}

func illegalTransitionErr(current, target Status) error {
	return apperror.WithMessage(ErrIllegalTransition,
		fmt.Sprintf("cannot transition booking from %s to %s", current, target))
}
