package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/internal/hotel"
	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/inventory"
	"hotel-pms-backend/internal/pkg/lock"
)

// memRepo is an in-memory Repository that mirrors the database guards:
// unique references and the per-unit overlap exclusion.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	byRef  map[string]*Booking
	events []*Event

	// forceDuplicates makes the next n Create calls fail as reference
	// collisions.
	forceDuplicates int
	// failUpdate makes UpdateStatus report no matched row.
	failUpdate bool
}

func newMemRepo() *memRepo {
	return &memRepo{byRef: map[string]*Booking{}}
}

func (r *memRepo) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceDuplicates > 0 {
		r.forceDuplicates--
		return errDuplicateReference
	}
	if _, exists := r.byRef[b.Reference]; exists {
		return errDuplicateReference
	}
	for _, other := range r.byRef {
		if other.RoomID == b.RoomID &&
			sameBed(other.BedID, b.BedID) &&
			other.Status.HoldsInventory() &&
			Overlaps(other.CheckIn, other.CheckOut, b.CheckIn, b.CheckOut) {
			return errOverlapExcluded
		}
	}

	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.byRef[b.Reference] = &clone
	return nil
}

func (r *memRepo) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byRef[reference]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.byRef {
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memRepo) UpdateStatus(ctx context.Context, b *Booking, from Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failUpdate {
		return false, nil
	}
	stored, ok := r.byRef[b.Reference]
	if !ok || stored.Status != from {
		return false, nil
	}
	clone := *b
	clone.UpdatedAt = time.Now().UTC()
	r.byRef[b.Reference] = &clone
	return true, nil
}

func (r *memRepo) HoldingReferences(ctx context.Context, roomID int64, bedID *int64, checkIn, checkOut time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var refs []string
	for _, b := range r.byRef {
		if b.RoomID == roomID &&
			sameBed(b.BedID, bedID) &&
			b.Status.HoldsInventory() &&
			Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			refs = append(refs, b.Reference)
		}
	}
	return refs, nil
}

func sameBed(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *memRepo) AppendEvent(ctx context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *e
	r.events = append(r.events, &clone)
	return nil
}

func (r *memRepo) ListEvents(ctx context.Context, bookingID int64) ([]*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Event
	for _, e := range r.events {
		if e.BookingID == bookingID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubUnits resolves (room, bed) targets against a fixed set of units.
type stubUnits struct {
	inventory.Service
	units []*inventory.Unit
	err   error
}

func (s *stubUnits) ResolveUnit(ctx context.Context, roomID int64, bedID *int64) (*inventory.Unit, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.units {
		if u.RoomID == roomID && sameBed(u.BedID, bedID) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, inventory.ErrRoomNotFound
}

// stubHotels serves one fixed hotel.
type stubHotels struct {
	hotel.Service
	hotel *hotel.Hotel
}

func (s *stubHotels) GetByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	if s.hotel == nil || s.hotel.ID != id {
		return nil, hotel.ErrNotFound
	}
	clone := *s.hotel
	return &clone, nil
}

// busyLocker never grants the lock.
type busyLocker struct{}

func (busyLocker) Acquire(ctx context.Context, key string) (bool, error) { return false, nil }
func (busyLocker) Release(ctx context.Context, key string) error         { return nil }

type fixture struct {
	repo    *memRepo
	service Service
}

func newFixture(t *testing.T, locker lock.Locker) *fixture {
	t.Helper()

	repo := newMemRepo()
	// Room 7 booked whole, and bed 7 inside dormitory room 9. The bed id
	// deliberately collides with room 7's id: beds and rooms draw from
	// separate sequences, and conflicts must not mix them up.
	bedID := int64(7)
	units := &stubUnits{units: []*inventory.Unit{
		{
			AccommodationID: 7,
			HotelID:         1,
			RoomID:          7,
			Status:          inventory.StatusAvailable,
		},
		{
			AccommodationID: bedID,
			HotelID:         1,
			RoomID:          9,
			BedID:           &bedID,
			Status:          inventory.StatusAvailable,
		},
	}}
	hotels := &stubHotels{hotel: &hotel.Hotel{
		ID:       1,
		PublicID: "0000000042",
		Name:     "Harbor View",
		IsActive: true,
	}}
	return &fixture{
		repo:    repo,
		service: NewService(repo, units, hotels, locker),
	}
}

func createRequest() CreateRequest {
	return CreateRequest{
		HotelID:   1,
		RoomID:    7,
		GuestName: "Ada Lovelace",
		Guests:    2,
		CheckIn:   day(10),
		CheckOut:  day(13),
		CreatedBy: "140000000042000001",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())

		b, err := f.service.Create(ctx, createRequest())
		require.NoError(t, err)

		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, PaymentPending, b.PaymentStatus)
		assert.Equal(t, int64(7), b.AccommodationID)

		ref, ok := identity.ParseBookingReference(b.Reference)
		require.True(t, ok)
		assert.Equal(t, int64(42), ref.EntityID)
		assert.Equal(t, int64(7), ref.AccommodationID)
		assert.Equal(t, day(10), ref.Date)

		events, err := f.service.Events(ctx, b.Reference)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, StatusPending, events[0].ToStatus)
	})

	t.Run("rejects blank guest name", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		req := createRequest()
		req.GuestName = "   "
		_, err := f.service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects zero-night stay", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		req := createRequest()
		req.CheckOut = req.CheckIn
		_, err := f.service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("rejects reversed dates", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		req := createRequest()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
		_, err := f.service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("rejects inactive hotel", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		svc := f.service.(*service)
		svc.hotelService.(*stubHotels).hotel.IsActive = false

		_, err := f.service.Create(ctx, createRequest())
		assert.ErrorIs(t, err, hotel.ErrInactive)
	})

	t.Run("rejects overlapping reservation and names the conflict", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())

		first, err := f.service.Create(ctx, createRequest())
		require.NoError(t, err)

		req := createRequest()
		req.CheckIn = day(12)
		req.CheckOut = day(15)
		_, err = f.service.Create(ctx, req)
		require.ErrorIs(t, err, ErrRoomNotAvailable)
		assert.Contains(t, err.Error(), first.Reference)
	})

	t.Run("same-day turnover is allowed", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())

		_, err := f.service.Create(ctx, createRequest())
		require.NoError(t, err)

		req := createRequest()
		req.CheckIn = day(13)
		req.CheckOut = day(16)
		_, err = f.service.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("conflicts are keyed on room and bed, not unit id", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())

		_, err := f.service.Create(ctx, createRequest())
		require.NoError(t, err)

		// Bed 7 in room 9 shares room 7's id; booking it for the same
		// dates must not collide with the whole-room reservation.
		bedReq := createRequest()
		bed := int64(7)
		bedReq.RoomID = 9
		bedReq.BedID = &bed
		_, err = f.service.Create(ctx, bedReq)
		require.NoError(t, err)

		// The bed itself is now held for those dates.
		_, err = f.service.Create(ctx, bedReq)
		assert.ErrorIs(t, err, ErrRoomNotAvailable)
	})

	t.Run("retries reference collisions", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		f.repo.forceDuplicates = maxReferenceAttempts - 1

		b, err := f.service.Create(ctx, createRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, b.Reference)
	})

	t.Run("gives up after exhausting reference attempts", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		f.repo.forceDuplicates = maxReferenceAttempts

		_, err := f.service.Create(ctx, createRequest())
		assert.ErrorIs(t, err, ErrGenerationExhausted)
	})

	t.Run("reports busy unit when the lock cannot be acquired", func(t *testing.T) {
		f := newFixture(t, busyLocker{})
		_, err := f.service.Create(ctx, createRequest())
		assert.ErrorIs(t, err, ErrUnitBusy)
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, lock.NewMemoryLocker())

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.Create(ctx, createRequest())
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrRoomNotAvailable):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes, "exactly one create may win the unit")
	assert.Equal(t, workers-1, conflicts)
}

func TestTransition(t *testing.T) {
	ctx := context.Background()
	actor := "120000000042000001"

	create := func(t *testing.T, f *fixture) *Booking {
		t.Helper()
		b, err := f.service.Create(ctx, createRequest())
		require.NoError(t, err)
		return b
	}

	advance := func(t *testing.T, f *fixture, ref string, target Status) *Booking {
		t.Helper()
		b, err := f.service.Transition(ctx, TransitionRequest{
			Reference: ref,
			Target:    target,
			Actor:     actor,
		})
		require.NoError(t, err)
		return b
	}

	t.Run("full stay walks pending to checked_out", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		b := create(t, f)

		b = advance(t, f, b.Reference, StatusConfirmed)
		assert.NotNil(t, b.ConfirmedAt)
		assert.Equal(t, PaymentPaid, b.PaymentStatus)

		b = advance(t, f, b.Reference, StatusCheckedIn)
		require.NotNil(t, b.CheckedInBy)
		assert.Equal(t, actor, *b.CheckedInBy)

		b = advance(t, f, b.Reference, StatusCheckedOut)
		require.NotNil(t, b.CheckedOutBy)
		assert.Equal(t, actor, *b.CheckedOutBy)

		events, err := f.service.Events(ctx, b.Reference)
		require.NoError(t, err)
		assert.Len(t, events, 4)
	})

	t.Run("checked-out stay releases the unit", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		b := create(t, f)
		advance(t, f, b.Reference, StatusConfirmed)
		advance(t, f, b.Reference, StatusCheckedIn)
		advance(t, f, b.Reference, StatusCheckedOut)

		// Same unit, same dates: no longer held.
		_, err := f.service.Create(ctx, createRequest())
		assert.NoError(t, err)
	})

	t.Run("cancellation records reason and refund", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		b := create(t, f)
		advance(t, f, b.Reference, StatusConfirmed)

		refund := int64(12500)
		b, err := f.service.Transition(ctx, TransitionRequest{
			Reference:   b.Reference,
			Target:      StatusCancelled,
			Actor:       actor,
			Reason:      "guest request",
			RefundCents: &refund,
		})
		require.NoError(t, err)

		assert.Equal(t, StatusCancelled, b.Status)
		assert.Equal(t, PaymentRefunded, b.PaymentStatus)
		require.NotNil(t, b.CancelReason)
		assert.Equal(t, "guest request", *b.CancelReason)
		require.NotNil(t, b.RefundCents)
		assert.Equal(t, refund, *b.RefundCents)
	})

	t.Run("illegal transition names the current status", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		b := create(t, f)

		_, err := f.service.Transition(ctx, TransitionRequest{
			Reference: b.Reference,
			Target:    StatusCheckedIn,
			Actor:     actor,
		})
		require.ErrorIs(t, err, ErrIllegalTransition)
		assert.Contains(t, err.Error(), string(StatusPending))
	})

	t.Run("unknown target status is invalid input", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		b := create(t, f)

		_, err := f.service.Transition(ctx, TransitionRequest{
			Reference: b.Reference,
			Target:    Status("archived"),
			Actor:     actor,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no-show requires the check-in date to have passed", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		svc := f.service.(*service)
		svc.now = func() time.Time { return day(11) }

		b := create(t, f)
		advance(t, f, b.Reference, StatusConfirmed)

		// Check-in is day 10, "today" is day 11: no-show is allowed.
		b, err := f.service.Transition(ctx, TransitionRequest{
			Reference: b.Reference,
			Target:    StatusNoShow,
			Actor:     actor,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusNoShow, b.Status)
	})

	t.Run("no-show on the check-in day is rejected", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		svc := f.service.(*service)
		svc.now = func() time.Time { return day(10).Add(23 * time.Hour) }

		b := create(t, f)
		advance(t, f, b.Reference, StatusConfirmed)

		_, err := f.service.Transition(ctx, TransitionRequest{
			Reference: b.Reference,
			Target:    StatusNoShow,
			Actor:     actor,
		})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("lost update race surfaces as illegal transition", func(t *testing.T) {
		f := newFixture(t, lock.NewMemoryLocker())
		b := create(t, f)
		f.repo.failUpdate = true

		_, err := f.service.Transition(ctx, TransitionRequest{
			Reference: b.Reference,
			Target:    StatusConfirmed,
			Actor:     actor,
		})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestGetByReference(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, lock.NewMemoryLocker())

	t.Run("malformed reference is not found", func(t *testing.T) {
		_, err := f.service.GetByReference(ctx, "not-a-reference")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("well-formed but absent reference is not found", func(t *testing.T) {
		ref, err := identity.NewBookingReference(42, 7, day(10), 1234)
		require.NoError(t, err)
		_, err = f.service.GetByReference(ctx, ref.String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, lock.NewMemoryLocker())

	avail, err := f.service.CheckAvailability(ctx, 7, nil, day(10), day(13))
	require.NoError(t, err)
	assert.True(t, avail.Available)

	b, err := f.service.Create(ctx, createRequest())
	require.NoError(t, err)

	avail, err = f.service.CheckAvailability(ctx, 7, nil, day(12), day(15))
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Equal(t, []string{b.Reference}, avail.Conflicts)
}
