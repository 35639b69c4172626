package booking

import (
	"context"
	"time"

	"hotel-pms-backend/internal/inventory"
)

// Availability is the result of an availability query. Conflicts carries the
// references of reservations holding the unit for overlapping dates.
type Availability struct {
	Available bool
	Conflicts []string
}

// ReservationSource provides the references of reservations that hold
// inventory on an accommodation unit and overlap the given half-open
// [checkIn, checkOut) date range. The unit is keyed by room id plus the
// bed id discriminator: a nil bedID matches whole-room reservations only,
// a set bedID matches reservations on that exact bed. Room and bed ids
// come from separate sequences, so a bare unit id would be ambiguous.
type ReservationSource interface {
	HoldingReferences(ctx context.Context, roomID int64, bedID *int64, checkIn, checkOut time.Time) ([]string, error)
}

// AvailabilityEngine decides whether granting a new reservation would
// violate the no-overlap invariant. It only answers the query; making the
// check and the subsequent insert atomic is the caller's job.
type AvailabilityEngine struct {
	source ReservationSource
}

// NewAvailabilityEngine creates a new availability engine.
func NewAvailabilityEngine(source ReservationSource) *AvailabilityEngine {
	return &AvailabilityEngine{source: source}
}

// Check reports whether the unit is free for the requested dates. A unit
// whose static status is maintenance or out_of_order is unavailable
// regardless of date overlap. Date validation (zero-night stays etc.)
// happens before the engine is consulted.
func (e *AvailabilityEngine) Check(ctx context.Context, unit *inventory.Unit, checkIn, checkOut time.Time) (Availability, error) {
	if !unit.Status.Bookable() {
		return Availability{Available: false}, nil
	}

	conflicts, err := e.source.HoldingReferences(ctx, unit.RoomID, unit.BedID, checkIn, checkOut)
	if err != nil {
		return Availability{}, err
	}
	if len(conflicts) > 0 {
		return Availability{Available: false, Conflicts: conflicts}, nil
	}
	return Availability{Available: true}, nil
}

// Overlaps reports whether two half-open [start, end) ranges intersect.
// Same-day turnover (one booking's check-out equal to another's check-in)
// is not a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
