package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingReferenceRoundTrip(t *testing.T) {
	date := time.Date(2026, 3, 14, 17, 30, 0, 0, time.UTC)

	ref, err := NewBookingReference(123, 456, date, 789)
	require.NoError(t, err)

	s := ref.String()
	require.Len(t, s, 32)
	assert.Equal(t, "BOOK", s[0:4])
	assert.Equal(t, "0000000123", s[4:14])
	assert.Equal(t, "20260314", s[14:22])
	assert.Equal(t, "000456", s[22:28])
	assert.Equal(t, "0789", s[28:])

	parsed, ok := ParseBookingReference(s)
	require.True(t, ok)
	assert.Equal(t, int64(123), parsed.EntityID)
	assert.Equal(t, int64(456), parsed.AccommodationID)
	assert.Equal(t, 789, parsed.Random)
	// Time-of-day is dropped: references carry dates only.
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), parsed.Date)
}

func TestNewBookingReferenceValidation(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		entityID        int64
		accommodationID int64
		random          int
	}{
		{"negative entity", -1, 1, 0},
		{"entity too large", 10_000_000_000, 1, 0},
		{"negative unit", 1, -1, 0},
		{"unit too large", 1, 1_000_000, 0},
		{"negative random", 1, 1, -1},
		{"random too large", 1, 1, MaxRandomSuffix + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBookingReference(tt.entityID, tt.accommodationID, date, tt.random)
			assert.Error(t, err)
		})
	}
}

func TestParseBookingReferenceRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong prefix", "RSVN0000000123202603140004560789"},
		{"too short", "BOOK000000012320260314000456"},
		{"non digit body", "BOOK00000001232026031400045607X9"},
		{"impossible date", "BOOK0000000123202613990004560789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseBookingReference(tt.input)
			assert.False(t, ok)
		})
	}
}

func TestGenerateBookingReference(t *testing.T) {
	date := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	ref, err := GenerateBookingReference(55, 9, date)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ref.Random, 0)
	assert.LessOrEqual(t, ref.Random, MaxRandomSuffix)

	parsed, ok := ParseBookingReference(ref.String())
	require.True(t, ok)
	assert.Equal(t, ref, parsed)
}
