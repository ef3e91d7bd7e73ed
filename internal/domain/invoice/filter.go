package invoice

import (
	"strings"
	"time"
)

// Filter mirrors the dashboard filters: substring on number and user name,
// exact status and an inclusive issue-date range.
type Filter struct {
	Number   string
	UserName string
	Status   Status
	From     *time.Time
	To       *time.Time
}

func (f Filter) IsZero() bool {
	return f.Number == "" && f.UserName == "" && f.Status == "" && f.From == nil && f.To == nil
}

func (f Filter) Match(inv *Invoice) bool {
	if f.Number != "" && !containsFold(inv.Number, f.Number) {
		return false
	}
	if f.UserName != "" && !containsFold(inv.UserName, f.UserName) && !containsFold(inv.Username, f.UserName) {
		return false
	}
	if f.Status != "" && inv.Status != f.Status {
		return false
	}
	if f.From != nil && inv.IssueDate.Before(*f.From) {
		return false
	}
	// To is a calendar day: everything issued on that day is kept.
	if f.To != nil && !inv.IssueDate.Before(f.To.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func (f Filter) Apply(invs Invoices) Invoices {
	if f.IsZero() {
		return invs
	}
	out := make(Invoices, 0, len(invs))
	for _, inv := range invs {
		if f.Match(inv) {
			out = append(out, inv)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
