package expiry

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify_Boundaries(t *testing.T) {
	asOf := date(2025, time.March, 10)
	leadDays := 7

	tests := []struct {
		name       string
		expiration time.Time
		wantStatus Status
		wantDays   int
	}{
		{"expires today is near-expiry", asOf, StatusNearExpiry, 0},
		{"expired yesterday", date(2025, time.March, 9), StatusExpired, -1},
		{"exactly at lead time", date(2025, time.March, 17), StatusNearExpiry, 7},
		{"one past lead time", date(2025, time.March, 18), StatusNormal, 8},
		{"long expired", date(2025, time.February, 1), StatusExpired, -37},
		{"far in the future", date(2025, time.June, 1), StatusNormal, 83},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.expiration, asOf, leadDays)
			if got.Status != tc.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tc.wantStatus)
			}
			if got.DaysLeft != tc.wantDays {
				t.Errorf("days left = %d, want %d", got.DaysLeft, tc.wantDays)
			}
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// 23:59 on the expiration day is still the same calendar day.
	expiration := time.Date(2025, time.March, 10, 0, 30, 0, 0, time.UTC)
	asOf := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)

	got := Classify(expiration, asOf, 7)
	if got.Status != StatusNearExpiry || got.DaysLeft != 0 {
		t.Errorf("got %s(%d), want NearExpiry(0)", got.Status, got.DaysLeft)
	}
}

func TestClassify_LeadTimeFromUser(t *testing.T) {
	asOf := date(2025, time.March, 10)
	expiration := date(2025, time.March, 15)

	if got := Classify(expiration, asOf, 7); got.Status != StatusNearExpiry {
		t.Errorf("lead 7: got %s, want NearExpiry", got.Status)
	}
	if got := Classify(expiration, asOf, 3); got.Status != StatusNormal {
		t.Errorf("lead 3: got %s, want Normal", got.Status)
	}
}
