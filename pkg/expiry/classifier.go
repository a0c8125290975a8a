package expiry

import (
	"time"
)

type Status int

const (
	StatusNormal Status = iota
	StatusNearExpiry
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusNearExpiry:
		return "NearExpiry"
	case StatusExpired:
		return "Expired"
	default:
		return "Normal"
	}
}

// Classification is the freshness bucket of an item as of a given date.
// DaysLeft is the whole-calendar-day distance to the expiration date and is
// negative once the item has expired.
type Classification struct {
	Status   Status
	DaysLeft int
}

// Classify buckets an expiration date against an as-of date using the user's
// reminder lead time. Time-of-day is ignored: both dates are normalized to
// midnight before subtracting, so an item expiring today is near-expiry with
// zero days left, not expired.
func Classify(expirationDate, asOfDate time.Time, leadTimeDays int) Classification {
	daysLeft := daysBetween(asOfDate, expirationDate)

	switch {
	case daysLeft < 0:
		return Classification{Status: StatusExpired, DaysLeft: daysLeft}
	case daysLeft <= leadTimeDays:
		return Classification{Status: StatusNearExpiry, DaysLeft: daysLeft}
	default:
		return Classification{Status: StatusNormal, DaysLeft: daysLeft}
	}
}

func daysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
