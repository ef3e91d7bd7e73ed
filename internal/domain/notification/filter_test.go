package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Apply(t *testing.T) {
	ns := Notifications{
		{ID: 1, Message: "La factura INV-00001 vence mañana", Type: TypeAlert, UserName: "Ana Restrepo"},
		{ID: 2, Message: "La factura INV-00002 vence en 10 días", Type: TypeInfo, IsRead: true, UserName: "Luis Gómez"},
		{ID: 3, Message: "Nueva factura asignada", Type: TypeInfo, UserName: "Ana Restrepo", Username: "arestrepo"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []ID
	}{
		{name: "zero", filter: Filter{}, want: []ID{1, 2, 3}},
		{name: "message substring", filter: Filter{Message: "VENCE"}, want: []ID{1, 2}},
		{name: "user name or username", filter: Filter{UserName: "arestrepo"}, want: []ID{3}},
		{name: "type", filter: Filter{Type: TypeInfo}, want: []ID{2, 3}},
		{name: "unread only", filter: Filter{UnreadOnly: true}, want: []ID{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(ns)
			gotIDs := make([]ID, 0, len(got))
			for _, n := range got {
				gotIDs = append(gotIDs, n.ID)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestType_Valid(t *testing.T) {
	assert.True(t, TypeAlert.Valid())
	assert.True(t, TypeWarning.Valid())
	assert.False(t, Type("urgent").Valid())
}
