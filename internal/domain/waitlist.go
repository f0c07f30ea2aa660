package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the yyyy-mm-dd form used for every date, in memory and in storage.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// WaitlistItem is one facility application being tracked. Optional text fields
// are empty strings when unset; LastFollowUp is empty until the first follow-up.
type WaitlistItem struct {
	ID                  string `json:"id"`
	Facility            string `json:"facility"`
	DateApplied         string `json:"dateApplied"`
	ContactName         string `json:"contactName,omitempty"`
	ContactPhoneOrEmail string `json:"contactPhoneOrEmail,omitempty"`
	Notes               string `json:"notes,omitempty"`
	FollowUpEveryDays   int    `json:"followUpEveryDays"`
	LastFollowUp        string `json:"lastFollowUp,omitempty"`
}

// LastContact is the date follow-up cadence is measured from: the last
// follow-up when there has been one, otherwise the application date.
func (w WaitlistItem) LastContact() string {
	if strings.TrimSpace(w.LastFollowUp) != "" {
		return w.LastFollowUp
	}
	return w.DateApplied
}

// WaitlistDraft is the user-entered form for a new waitlist item before
// defaults and trimming are applied.
type WaitlistDraft struct {
	Facility            string `json:"facility"`
	DateApplied         string `json:"dateApplied,omitempty" validate:"omitempty,datetime=2006-01-02" binding:"omitempty,datetime=2006-01-02"`
	ContactName         string `json:"contactName,omitempty"`
	ContactPhoneOrEmail string `json:"contactPhoneOrEmail,omitempty"`
	Notes               string `json:"notes,omitempty"`
	FollowUpEveryDays   int    `json:"followUpEveryDays,omitempty"`
}

// FormatDate renders the calendar date of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a yyyy-mm-dd string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DaysBetween returns the whole number of days from a to b, rounded down.
// Both dates are read as UTC midnights, so the result is the plain calendar
// difference with no daylight-saving drift.
func DaysBetween(a, b string) (int, error) {
	from, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	to, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	secs := to.Unix() - from.Unix()
	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 && secs < 0 {
		days--
	}
	return int(days), nil
}
