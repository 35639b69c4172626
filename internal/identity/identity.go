// Package identity mints and parses the structured identifiers used across
// the platform: 10-digit public hotel ids, composite staff account ids, and
// booking references. Every identifier is a fixed-width digit string so a
// reader can recover provenance without a lookup.
package identity

import (
	"fmt"
	"strconv"
)

// RoleCode is the 2-digit role-class prefix of an account id.
type RoleCode string

const (
	RoleCodeSystemAdmin  RoleCode = "01"
	RoleCodeVendor       RoleCode = "02"
	RoleCodeHotelAdmin   RoleCode = "11"
	RoleCodeManager      RoleCode = "12"
	RoleCodeHousekeeping RoleCode = "13"
	RoleCodeFrontDesk    RoleCode = "14"
	RoleCodeMaintenance  RoleCode = "15"
)

var roleCodes = map[RoleCode]bool{
	RoleCodeSystemAdmin:  true,
	RoleCodeVendor:       true,
	RoleCodeHotelAdmin:   true,
	RoleCodeManager:      true,
	RoleCodeHousekeeping: true,
	RoleCodeFrontDesk:    true,
	RoleCodeMaintenance:  true,
}

// Valid reports whether the role code belongs to the closed enumeration.
func (r RoleCode) Valid() bool {
	return roleCodes[r]
}

// AccountType is the 1-digit account-type code of an account id.
type AccountType int

const (
	AccountTypePrimary AccountType = 1 // first administrator, system-generated
	AccountTypeStaff   AccountType = 2
	AccountTypeService AccountType = 3
)

// Valid reports whether the account type belongs to the closed enumeration.
func (t AccountType) Valid() bool {
	return t >= AccountTypePrimary && t <= AccountTypeService
}

const (
	hotelIDWidth  = 10
	sequenceWidth = 5
	accountIDLen  = 2 + 1 + hotelIDWidth + sequenceWidth

	// MaxAccountSequence is the largest per-(role, hotel) sequence an
	// account id can carry.
	MaxAccountSequence = 99999
)

// FormatHotelID renders an allocated hotel sequence value as the 10-digit
// public hotel id.
func FormatHotelID(seq int64) (string, error) {
	if seq < 0 || seq > 9_999_999_999 {
		return "", fmt.Errorf("hotel sequence %d out of range", seq)
	}
	return fmt.Sprintf("%0*d", hotelIDWidth, seq), nil
}

// ValidHotelID reports whether s is a well-formed public hotel id.
func ValidHotelID(s string) bool {
	return len(s) == hotelIDWidth && allDigits(s)
}

// AccountID is the decoded form of a staff account identifier:
// 2-digit role code, 1-digit account type, the owning hotel's 10-digit
// public id, and a 5-digit per-(role, hotel) sequence.
type AccountID struct {
	RoleCode    RoleCode
	AccountType AccountType
	HotelID     string
	Sequence    int
}

// NewAccountID builds an AccountID, validating every field.
func NewAccountID(roleCode RoleCode, accountType AccountType, hotelID string, sequence int) (AccountID, error) {
	if !roleCode.Valid() {
		return AccountID{}, fmt.Errorf("unknown role code %q", roleCode)
	}
	if !accountType.Valid() {
		return AccountID{}, fmt.Errorf("unknown account type %d", accountType)
	}
	if !ValidHotelID(hotelID) {
		return AccountID{}, fmt.Errorf("malformed hotel id %q", hotelID)
	}
	if sequence < 1 || sequence > MaxAccountSequence {
		return AccountID{}, fmt.Errorf("account sequence %d out of range", sequence)
	}
	return AccountID{
		RoleCode:    roleCode,
		AccountType: accountType,
		HotelID:     hotelID,
		Sequence:    sequence,
	}, nil
}

// String renders the fixed-width (18 character) account id.
func (a AccountID) String() string {
	return fmt.Sprintf("%s%d%s%0*d", a.RoleCode, a.AccountType, a.HotelID, sequenceWidth, a.Sequence)
}

// ParseAccountID splits an account id back into its four fields. The second
// return value reports validity; malformed input is not an error condition.
func ParseAccountID(s string) (AccountID, bool) {
	if len(s) != accountIDLen || !allDigits(s) {
		return AccountID{}, false
	}

	roleCode := RoleCode(s[0:2])
	if !roleCode.Valid() {
		return AccountID{}, false
	}

	accountType := AccountType(s[2] - '0')
	if !accountType.Valid() {
		return AccountID{}, false
	}

	hotelID := s[3 : 3+hotelIDWidth]

	seq, err := strconv.Atoi(s[3+hotelIDWidth:])
	if err != nil || seq < 1 {
		return AccountID{}, false
	}

	return AccountID{
		RoleCode:    roleCode,
		AccountType: accountType,
		HotelID:     hotelID,
		Sequence:    seq,
	}, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
