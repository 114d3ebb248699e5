// utils/timeutil.go
package utils

import "time"

// All trip dates are compared in UTC. Inputs arriving with an offset are
// normalized before any ordering check.
func ToUTC(t time.Time) time.Time { return t.UTC() }

func NowUTC() time.Time { return time.Now().UTC() }

// ValidateTripWindow enforces the creation-time ordering rules:
// the trip may not start in the past and must end after it starts.
func ValidateTripWindow(startsAt, endsAt, now time.Time) error {
	startsAt = startsAt.UTC()
	endsAt = endsAt.UTC()

	if startsAt.Before(now.UTC()) {
		return ErrInvalidDate
	}
	if !endsAt.After(startsAt) {
		return ErrInvalidDate
	}
	return nil
}

// ValidateActivityWindow checks that an activity falls inside the trip
// window, endpoints included. Before-start and after-end are separate
// checks; both report the same error kind.
func ValidateActivityWindow(occursAt, tripStartsAt, tripEndsAt time.Time) error {
	occursAt = occursAt.UTC()

	if occursAt.Before(tripStartsAt.UTC()) {
		return ErrInvalidDate
	}
	if occursAt.After(tripEndsAt.UTC()) {
		return ErrInvalidDate
	}
	return nil
}

// Format helpers

// FormatLongDate renders a date the way it appears in confirmation
// emails, e.g. "January 2, 2006".
func FormatLongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("January 2, 2006")
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
