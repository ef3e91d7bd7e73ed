// Package alert classifies a user's outstanding invoices by due date.
//
// Two bucketing policies exist and they are not compatible with each other:
//
//	two_tier   due tomorrow -> urgent, due in 2..3 days -> normal,
//	           due today or overdue are not surfaced.
//	graduated  overdue up to 15 days, due today and due in 1..7 days -> urgent
//	           (alerta), due in 8..22 days -> normal (info).
//
// Exactly one policy is active per deployment.
package alert

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
)

type (
	Policy string
	Tier   string

	Alert struct {
		InvoiceID     invoice.ID
		InvoiceNumber string
		TotalAmount   decimal.Decimal
		Status        invoice.Status
		DueDate       time.Time
		DaysUntilDue  int
		Tier          Tier
		Type          notification.Type
		Message       string
	}

	Alerts struct {
		Urgent []Alert
		Normal []Alert
	}
)

const (
	PolicyTwoTier   Policy = "two_tier"
	PolicyGraduated Policy = "graduated"
)

const (
	TierOverdue  Tier = "overdue"
	TierToday    Tier = "today"
	TierTomorrow Tier = "tomorrow"
	TierCritical Tier = "critical"
	TierNormal   Tier = "normal"
)

// graduated window, in days relative to today
const (
	maxOverdueDays  = 15
	maxCriticalDays = 7
	maxNormalDays   = 22
)

// two-tier window
const twoTierHorizonDays = 3

var ErrUnknownPolicy = errors.New("unknown alert policy")

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyTwoTier, "two-tier", "twotier":
		return PolicyTwoTier, nil
	case PolicyGraduated:
		return PolicyGraduated, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Urgent tiers are persisted as "alerta", the rest as "info".
func (t Tier) Urgent() bool { return t != TierNormal }

// Midnight truncates t to the start of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DaysBetween counts calendar days from today to due. Each side is read as
// the calendar date of its own location: due dates come from DATE columns
// and carry no meaningful zone.
func DaysBetween(today, due time.Time) int {
	y1, m1, d1 := today.Date()
	y2, m2, d2 := due.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Classify returns the alert for inv under policy p, or false if inv is not surfaced.
func (p Policy) Classify(inv *invoice.Invoice, today time.Time) (Alert, bool) {
	if inv == nil || inv.Status.Settled() {
		return Alert{}, false
	}

	days := DaysBetween(today, inv.DueDate)

	var tier Tier
	switch p {
	case PolicyTwoTier:
		switch {
		case days == 1:
			tier = TierTomorrow
		case days > 1 && days <= twoTierHorizonDays:
			tier = TierNormal
		default:
			return Alert{}, false
		}
	case PolicyGraduated:
		switch {
		case days < -maxOverdueDays || days > maxNormalDays:
			return Alert{}, false
		case days < 0:
			tier = TierOverdue
		case days == 0:
			tier = TierToday
		case days <= maxCriticalDays:
			tier = TierCritical
		default:
			tier = TierNormal
		}
	default:
		return Alert{}, false
	}

	typ := notification.TypeInfo
	if tier.Urgent() {
		typ = notification.TypeAlert
	}

	return Alert{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		DaysUntilDue:  days,
		Tier:          tier,
		Type:          typ,
		Message:       Message(inv.Number, inv.TotalAmount, days),
	}, true
}

// Build buckets invs into urgent and normal lists, keeping input order.
func Build(p Policy, invs invoice.Invoices, today time.Time) Alerts {
	out := Alerts{Urgent: []Alert{}, Normal: []Alert{}}
	for _, inv := range invs {
		a, ok := p.Classify(inv, today)
		if !ok {
			continue
		}
		if a.Tier.Urgent() {
			out.Urgent = append(out.Urgent, a)
		} else {
			out.Normal = append(out.Normal, a)
		}
	}
	return out
}

func (a Alerts) All() []Alert {
	all := make([]Alert, 0, len(a.Urgent)+len(a.Normal))
	all = append(all, a.Urgent...)
	return append(all, a.Normal...)
}
