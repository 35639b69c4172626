package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHotelID(t *testing.T) {
	t.Run("pads to ten digits", func(t *testing.T) {
		id, err := FormatHotelID(42)
		require.NoError(t, err)
		assert.Equal(t, "0000000042", id)
		assert.True(t, ValidHotelID(id))
	})

	t.Run("rejects out-of-range sequence", func(t *testing.T) {
		_, err := FormatHotelID(-1)
		assert.Error(t, err)

		_, err = FormatHotelID(10_000_000_000)
		assert.Error(t, err)
	})
}

func TestValidHotelID(t *testing.T) {
	assert.True(t, ValidHotelID("0000000123"))
	assert.False(t, ValidHotelID("123"))
	assert.False(t, ValidHotelID("00000001234"))
	assert.False(t, ValidHotelID("00000O0123"))
}

func TestAccountIDRoundTrip(t *testing.T) {
	id, err := NewAccountID(RoleCodeFrontDesk, AccountTypeStaff, "0000000123", 7)
	require.NoError(t, err)

	s := id.String()
	require.Len(t, s, 18)
	assert.Equal(t, "14", s[0:2])
	assert.Equal(t, "2", s[2:3])
	assert.Equal(t, "0000000123", s[3:13])
	assert.Equal(t, "00007", s[13:])

	parsed, ok := ParseAccountID(s)
	require.True(t, ok)
	assert.Equal(t, id, parsed)
}

func TestNewAccountIDValidation(t *testing.T) {
	tests := []struct {
		name        string
		roleCode    RoleCode
		accountType AccountType
		hotelID     string
		sequence    int
	}{
		{"unknown role code", "99", AccountTypeStaff, "0000000123", 1},
		{"unknown account type", RoleCodeManager, 4, "0000000123", 1},
		{"short hotel id", RoleCodeManager, AccountTypeStaff, "123", 1},
		{"zero sequence", RoleCodeManager, AccountTypeStaff, "0000000123", 0},
		{"sequence too large", RoleCodeManager, AccountTypeStaff, "0000000123", MaxAccountSequence + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccountID(tt.roleCode, tt.accountType, tt.hotelID, tt.sequence)
			assert.Error(t, err)
		})
	}
}

func TestParseAccountIDRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "1420000000123"},
		{"too long", "142000000012300007X"},
		{"non digit", "14200000O012300007"},
		{"unknown role code", "992000000012300007"},
		{"unknown account type", "149000000012300007"},
		{"zero sequence", "142000000012300000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseAccountID(tt.input)
			assert.False(t, ok)
		})
	}
}

func TestRoleCodeValid(t *testing.T) {
	for _, code := range []RoleCode{
		RoleCodeSystemAdmin, RoleCodeVendor, RoleCodeHotelAdmin,
		RoleCodeManager, RoleCodeHousekeeping, RoleCodeFrontDesk, RoleCodeMaintenance,
	} {
		assert.True(t, code.Valid(), string(code))
	}
	assert.False(t, RoleCode("03").Valid())
	assert.False(t, RoleCode("1").Valid())
}
