// Package waitlist implements the facility waitlist tracker as pure functions
// over a slice of items. Every operation returns a new slice and never mutates
// its input, so callers can keep the previous state if a save fails.
package waitlist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/senior-care-guide/internal/domain"
)

const (
	DefaultFollowUpDays = 14
	MinFollowUpDays     = 3
	MaxFollowUpDays     = 60
)

// Status is the follow-up state shown next to each item.
type Status string

const (
	StatusDue      Status = "due"
	StatusTracking Status = "tracking"
)

// IDGenerator produces unique item identifiers.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.New().String()
}

// NormalizeFollowUpDays applies the default to unset values and clamps the rest to the allowed range.
func NormalizeFollowUpDays(days int) int {
	switch {
	case days <= 0:
		return DefaultFollowUpDays
	case days < MinFollowUpDays:
		return MinFollowUpDays
	case days > MaxFollowUpDays:
		return MaxFollowUpDays
	default:
		return days
	}
}

// NewItem builds an item from a draft. It returns false, and no item, when the
// facility name is blank after trimming.
func NewItem(draft domain.WaitlistDraft, today string, newID IDGenerator) (domain.WaitlistItem, bool) {
	facility := strings.TrimSpace(draft.Facility)
	if facility == "" {
		return domain.WaitlistItem{}, false
	}
	if newID == nil {
		newID = NewUUID
	}

	applied := strings.TrimSpace(draft.DateApplied)
	if applied == "" {
		applied = today
	}

	return domain.WaitlistItem{
		ID:                  newID(),
		Facility:            facility,
		DateApplied:         applied,
		ContactName:         strings.TrimSpace(draft.ContactName),
		ContactPhoneOrEmail: strings.TrimSpace(draft.ContactPhoneOrEmail),
		Notes:               strings.TrimSpace(draft.Notes),
		FollowUpEveryDays:   NormalizeFollowUpDays(draft.FollowUpEveryDays),
		LastFollowUp:        "",
	}, true
}

// Sanitize cleans items that come from outside the tracker, such as an import.
// Items with a blank facility or an unreadable application date are dropped,
// text is trimmed, the interval is normalized and an unreadable last follow-up
// is cleared. Missing or repeated ids get a fresh one. Order is kept.
func Sanitize(items []domain.WaitlistItem, newID IDGenerator) []domain.WaitlistItem {
	if newID == nil {
		newID = NewUUID
	}

	out := make([]domain.WaitlistItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item.Facility = strings.TrimSpace(item.Facility)
		item.DateApplied = strings.TrimSpace(item.DateApplied)
		if item.Facility == "" {
			continue
		}
		if _, err := domain.ParseDate(item.DateApplied); err != nil {
			continue
		}

		item.ID = strings.TrimSpace(item.ID)
		for item.ID == "" || seen[item.ID] {
			item.ID = newID()
		}
		seen[item.ID] = true

		item.ContactName = strings.TrimSpace(item.ContactName)
		item.ContactPhoneOrEmail = strings.TrimSpace(item.ContactPhoneOrEmail)
		item.Notes = strings.TrimSpace(item.Notes)
		item.FollowUpEveryDays = NormalizeFollowUpDays(item.FollowUpEveryDays)

		item.LastFollowUp = strings.TrimSpace(item.LastFollowUp)
		if item.LastFollowUp != "" {
			if _, err := domain.ParseDate(item.LastFollowUp); err != nil {
				item.LastFollowUp = ""
			}
		}

		out = append(out, item)
	}
	return out
}

// Add places a new item at the front of the list. A rejected draft returns the
// input unchanged and false.
func Add(items []domain.WaitlistItem, draft domain.WaitlistDraft, today string, newID IDGenerator) ([]domain.WaitlistItem, domain.WaitlistItem, bool) {
	item, ok := NewItem(draft, today, newID)
	if !ok {
		return items, domain.WaitlistItem{}, false
	}

	out := make([]domain.WaitlistItem, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	return out, item, true
}

// MarkFollowedUp sets the last follow-up of the item with id to today.
// Unknown ids leave the list unchanged and return false.
func MarkFollowedUp(items []domain.WaitlistItem, id, today string) ([]domain.WaitlistItem, bool) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, false
	}

	out := make([]domain.WaitlistItem, len(items))
	copy(out, items)
	out[idx].LastFollowUp = today
	return out, true
}

// Remove deletes the item with id. Unknown ids leave the list unchanged and return false.
func Remove(items []domain.WaitlistItem, id string) ([]domain.WaitlistItem, bool) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, false
	}

	out := make([]domain.WaitlistItem, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, true
}

// Find returns the item with id.
func Find(items []domain.WaitlistItem, id string) (domain.WaitlistItem, bool) {
	idx := indexOf(items, id)
	if idx < 0 {
		return domain.WaitlistItem{}, false
	}
	return items[idx], true
}

// DaysSinceContact is the number of whole days from the item's last contact to today.
// It returns false when either date cannot be read.
func DaysSinceContact(item domain.WaitlistItem, today string) (int, bool) {
	days, err := domain.DaysBetween(item.LastContact(), today)
	if err != nil {
		return 0, false
	}
	return days, true
}

// IsDue reports whether the follow-up interval has elapsed. Items with
// unreadable dates are never due.
func IsDue(item domain.WaitlistItem, today string) bool {
	days, ok := DaysSinceContact(item, today)
	if !ok {
		return false
	}
	return days >= item.FollowUpEveryDays
}

// StatusOf returns the badge state for the item.
func StatusOf(item domain.WaitlistItem, today string) Status {
	if IsDue(item, today) {
		return StatusDue
	}
	return StatusTracking
}

// DueItems returns the due items in list order.
func DueItems(items []domain.WaitlistItem, today string) []domain.WaitlistItem {
	due := make([]domain.WaitlistItem, 0)
	for _, item := range items {
		if IsDue(item, today) {
			due = append(due, item)
		}
	}
	return due
}

// DueCount is the number of due items, used for the notification badge.
func DueCount(items []domain.WaitlistItem, today string) int {
	n := 0
	for _, item := range items {
		if IsDue(item, today) {
			n++
		}
	}
	return n
}

func indexOf(items []domain.WaitlistItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
