package identity

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	refPrefix     = "BOOK"
	entityWidth   = 10
	dateWidth     = 8
	unitWidth     = 6
	randomWidth   = 4
	referenceLen  = len(refPrefix) + entityWidth + dateWidth + unitWidth + randomWidth
	refDateLayout = "20060102"
)

// MaxRandomSuffix bounds the 4-digit collision-avoidance suffix.
const MaxRandomSuffix = 9999

// BookingReference is the decoded form of a booking reference:
// "BOOK" + 10-digit entity id (owning vendor if any, else the hotel) +
// YYYYMMDD check-in date + 6-digit accommodation unit id (bed if the
// booking targets a bed, else the room) + 4-digit random suffix.
type BookingReference struct {
	EntityID        int64
	Date            time.Time
	AccommodationID int64
	Random          int
}

// NewBookingReference builds a BookingReference with an explicit random
// suffix, validating field ranges.
func NewBookingReference(entityID, accommodationID int64, date time.Time, random int) (BookingReference, error) {
	if entityID < 0 || entityID > 9_999_999_999 {
		return BookingReference{}, fmt.Errorf("entity id %d out of range", entityID)
	}
	if accommodationID < 0 || accommodationID > 999_999 {
		return BookingReference{}, fmt.Errorf("accommodation id %d out of range", accommodationID)
	}
	if random < 0 || random > MaxRandomSuffix {
		return BookingReference{}, fmt.Errorf("random suffix %d out of range", random)
	}
	return BookingReference{
		EntityID:        entityID,
		Date:            truncateToDate(date),
		AccommodationID: accommodationID,
		Random:          random,
	}, nil
}

// GenerateBookingReference builds a reference with a fresh random suffix.
// Collisions are possible; the persisting caller detects the uniqueness
// violation and calls again for a new suffix.
func GenerateBookingReference(entityID, accommodationID int64, date time.Time) (BookingReference, error) {
	return NewBookingReference(entityID, accommodationID, date, rand.IntN(MaxRandomSuffix+1))
}

// String renders the fixed-width (32 character) reference.
func (r BookingReference) String() string {
	return fmt.Sprintf("%s%0*d%s%0*d%0*d",
		refPrefix,
		entityWidth, r.EntityID,
		r.Date.Format(refDateLayout),
		unitWidth, r.AccommodationID,
		randomWidth, r.Random,
	)
}

// ParseBookingReference recovers (entityId, date, accommodationId, random)
// from a reference string. The second return value reports validity; this
// is a boolean check, never a failure.
func ParseBookingReference(s string) (BookingReference, bool) {
	if len(s) != referenceLen || !strings.HasPrefix(s, refPrefix) {
		return BookingReference{}, false
	}
	body := s[len(refPrefix):]
	if !allDigits(body) {
		return BookingReference{}, false
	}

	entityID, err := strconv.ParseInt(body[:entityWidth], 10, 64)
	if err != nil {
		return BookingReference{}, false
	}

	date, err := time.Parse(refDateLayout, body[entityWidth:entityWidth+dateWidth])
	if err != nil {
		return BookingReference{}, false
	}

	unitID, err := strconv.ParseInt(body[entityWidth+dateWidth:entityWidth+dateWidth+unitWidth], 10, 64)
	if err != nil {
		return BookingReference{}, false
	}

	random, err := strconv.Atoi(body[entityWidth+dateWidth+unitWidth:])
	if err != nil {
		return BookingReference{}, false
	}

	return BookingReference{
		EntityID:        entityID,
		Date:            date.UTC(),
		AccommodationID: unitID,
		Random:          random,
	}, true
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
