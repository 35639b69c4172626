package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memInventoryRepo is an in-memory Repository.
type memInventoryRepo struct {
	rooms map[int64]*Room
	beds  map[int64]*Bed
	next  int64
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{rooms: map[int64]*Room{}, beds: map[int64]*Bed{}}
}

func (r *memInventoryRepo) CreateRoom(ctx context.Context, room *Room) error {
	r.next++
	room.ID = r.next
	clone := *room
	r.rooms[room.ID] = &clone
	return nil
}

func (r *memInventoryRepo) GetRoom(ctx context.Context, id int64) (*Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *memInventoryRepo) ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error) {
	var out []*Room
	for _, room := range r.rooms {
		clone := *room
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memInventoryRepo) UpdateRoomStatus(ctx context.Context, id int64, status UnitStatus) error {
	room, ok := r.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}
	room.Status = status
	return nil
}

func (r *memInventoryRepo) CreateBed(ctx context.Context, bed *Bed) error {
	r.next++
	bed.ID = r.next
	clone := *bed
	r.beds[bed.ID] = &clone
	return nil
}

func (r *memInventoryRepo) GetBed(ctx context.Context, id int64) (*Bed, error) {
	bed, ok := r.beds[id]
	if !ok {
		return nil, ErrBedNotFound
	}
	clone := *bed
	return &clone, nil
}

func (r *memInventoryRepo) ListBeds(ctx context.Context, roomID int64) ([]*Bed, error) {
	var out []*Bed
	for _, bed := range r.beds {
		if bed.RoomID == roomID {
			clone := *bed
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) UpdateBedStatus(ctx context.Context, id int64, status UnitStatus) error {
	bed, ok := r.beds[id]
	if !ok {
		return ErrBedNotFound
	}
	bed.Status = status
	return nil
}

// setup seeds a standard room "101" and a dormitory room "201" with one bed.
func setup(t *testing.T) (Service, *Room, *Room, *Bed) {
	t.Helper()
	svc := NewService(newMemInventoryRepo())

	standard, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		HotelID: 1,
		Number:  "101",
	})
	require.NoError(t, err)

	dorm, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		HotelID:   1,
		Number:    "201",
		Dormitory: true,
	})
	require.NoError(t, err)

	bed, err := svc.CreateBed(context.Background(), CreateBedRequest{
		RoomID: dorm.ID,
		Label:  "A",
	})
	require.NoError(t, err)

	return svc, standard, dorm, bed
}

func TestResolveUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("room target", func(t *testing.T) {
		svc, standard, _, _ := setup(t)

		unit, err := svc.ResolveUnit(ctx, standard.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, standard.ID, unit.AccommodationID)
		assert.Nil(t, unit.BedID)
		assert.Equal(t, StatusAvailable, unit.Status)
	})

	t.Run("bed target", func(t *testing.T) {
		svc, _, dorm, bed := setup(t)

		unit, err := svc.ResolveUnit(ctx, dorm.ID, &bed.ID)
		require.NoError(t, err)
		assert.Equal(t, bed.ID, unit.AccommodationID)
		require.NotNil(t, unit.BedID)
		assert.Equal(t, bed.ID, *unit.BedID)
		assert.Equal(t, dorm.ID, unit.RoomID)
	})

	t.Run("dormitory room cannot be taken whole", func(t *testing.T) {
		svc, _, dorm, _ := setup(t)

		_, err := svc.ResolveUnit(ctx, dorm.ID, nil)
		assert.ErrorIs(t, err, ErrDormitoryRoom)
	})

	t.Run("bed inherits room unavailability", func(t *testing.T) {
		svc, _, dorm, bed := setup(t)
		require.NoError(t, svc.SetRoomStatus(ctx, dorm.ID, StatusMaintenance))

		unit, err := svc.ResolveUnit(ctx, dorm.ID, &bed.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusMaintenance, unit.Status)
		assert.False(t, unit.Status.Bookable())
	})

	t.Run("bed must belong to the room", func(t *testing.T) {
		svc, standard, _, bed := setup(t)

		_, err := svc.ResolveUnit(ctx, standard.ID, &bed.ID)
		assert.ErrorIs(t, err, ErrBedRoomMismatch)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		_, err := svc.ResolveUnit(ctx, 404, nil)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestCreateBedRequiresDormitory(t *testing.T) {
	svc, standard, _, _ := setup(t)

	_, err := svc.CreateBed(context.Background(), CreateBedRequest{
		RoomID: standard.ID,
		Label:  "A",
	})
	assert.ErrorIs(t, err, ErrNotDormitory)
}

func TestSetBedStatusRejectsOutOfOrder(t *testing.T) {
	svc, _, _, bed := setup(t)

	err := svc.SetBedStatus(context.Background(), bed.ID, StatusOutOfOrder)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateRoomValidation(t *testing.T) {
	svc := NewService(newMemInventoryRepo())

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{HotelID: 1, Number: "  "})
	assert.ErrorIs(t, err, ErrNumberRequired)
}
