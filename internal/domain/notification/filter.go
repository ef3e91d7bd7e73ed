package notification

import "strings"

type Filter struct {
	Message    string
	UserName   string
	Type       Type
	UnreadOnly bool
}

func (f Filter) IsZero() bool {
	return f.Message == "" && f.UserName == "" && f.Type == "" && !f.UnreadOnly
}

func (f Filter) Match(n *Notification) bool {
	if f.Message != "" && !containsFold(n.Message, f.Message) {
		return false
	}
	if f.UserName != "" && !containsFold(n.UserName, f.UserName) && !containsFold(n.Username, f.UserName) {
		return false
	}
	if f.Type != "" && n.Type != f.Type {
		return false
	}
	if f.UnreadOnly && n.IsRead {
		return false
	}
	return true
}

func (f Filter) Apply(ns Notifications) Notifications {
	if f.IsZero() {
		return ns
	}
	out := make(Notifications, 0, len(ns))
	for _, n := range ns {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
