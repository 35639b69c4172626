package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/internal/inventory"
)

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical ranges", day(1), day(5), day(1), day(5), true},
		{"partial overlap", day(1), day(5), day(3), day(8), true},
		{"contained", day(1), day(10), day(3), day(5), true},
		{"disjoint", day(1), day(3), day(5), day(8), false},
		{"same-day turnover is not a conflict", day(1), day(5), day(5), day(8), false},
		{"reverse same-day turnover", day(5), day(8), day(1), day(5), false},
		{"one night inside", day(3), day(4), day(1), day(10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

// stubSource returns a fixed set of holding references.
type stubSource struct {
	refs []string
	err  error
}

func (s *stubSource) HoldingReferences(ctx context.Context, roomID int64, bedID *int64, checkIn, checkOut time.Time) ([]string, error) {
	return s.refs, s.err
}

func TestAvailabilityEngineCheck(t *testing.T) {
	unit := func(status inventory.UnitStatus) *inventory.Unit {
		return &inventory.Unit{AccommodationID: 7, HotelID: 1, RoomID: 7, Status: status}
	}

	t.Run("free unit is available", func(t *testing.T) {
		engine := NewAvailabilityEngine(&stubSource{})
		avail, err := engine.Check(context.Background(), unit(inventory.StatusAvailable), day(1), day(3))
		require.NoError(t, err)
		assert.True(t, avail.Available)
		assert.Empty(t, avail.Conflicts)
	})

	t.Run("overlapping reservations block and are reported", func(t *testing.T) {
		engine := NewAvailabilityEngine(&stubSource{refs: []string{"ref-a", "ref-b"}})
		avail, err := engine.Check(context.Background(), unit(inventory.StatusAvailable), day(1), day(3))
		require.NoError(t, err)
		assert.False(t, avail.Available)
		assert.Equal(t, []string{"ref-a", "ref-b"}, avail.Conflicts)
	})

	t.Run("occupied unit still takes future reservations", func(t *testing.T) {
		engine := NewAvailabilityEngine(&stubSource{})
		avail, err := engine.Check(context.Background(), unit(inventory.StatusOccupied), day(1), day(3))
		require.NoError(t, err)
		assert.True(t, avail.Available)
	})

	t.Run("maintenance unit is never available", func(t *testing.T) {
		// The source would say free, but the static status wins.
		engine := NewAvailabilityEngine(&stubSource{})
		avail, err := engine.Check(context.Background(), unit(inventory.StatusMaintenance), day(1), day(3))
		require.NoError(t, err)
		assert.False(t, avail.Available)
	})

	t.Run("out of order unit is never available", func(t *testing.T) {
		engine := NewAvailabilityEngine(&stubSource{})
		avail, err := engine.Check(context.Background(), unit(inventory.StatusOutOfOrder), day(1), day(3))
		require.NoError(t, err)
		assert.False(t, avail.Available)
	})
}
