package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionTable(t *testing.T) {
	all := []Status{
		StatusPending, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCancelled, StatusNoShow,
	}

	legal := map[Status]map[Status]bool{
		StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusCheckedIn: true, StatusCancelled: true, StatusNoShow: true},
		StatusCheckedIn: {StatusCheckedOut: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := legal[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []Status{
		StatusPending, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCancelled, StatusNoShow,
	}
	for _, terminal := range []Status{StatusCheckedOut, StatusCancelled, StatusNoShow} {
		for _, to := range all {
			assert.False(t, terminal.CanTransitionTo(to), "%s -> %s", terminal, to)
		}
	}
}

func TestHoldsInventory(t *testing.T) {
	assert.True(t, StatusPending.HoldsInventory())
	assert.True(t, StatusConfirmed.HoldsInventory())
	assert.True(t, StatusCheckedIn.HoldsInventory())
	assert.False(t, StatusCheckedOut.HoldsInventory())
	assert.False(t, StatusCancelled.HoldsInventory())
	assert.False(t, StatusNoShow.HoldsInventory())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusNoShow.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
