package waitlist

import "github.com/senior-care-guide/internal/domain"

// ItemView is an item with its follow-up state as of a given day.
type ItemView struct {
	domain.WaitlistItem
	Status           Status `json:"status"`
	DaysSinceContact *int   `json:"daysSinceContact,omitempty"`
}

// View annotates every item, keeping list order.
func View(items []domain.WaitlistItem, today string) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		v := ItemView{WaitlistItem: item, Status: StatusOf(item, today)}
		if days, ok := DaysSinceContact(item, today); ok {
			v.DaysSinceContact = &days
		}
		out = append(out, v)
	}
	return out
}
