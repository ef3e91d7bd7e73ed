package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "Admin", want: RoleAdmin},
		{in: "admin", want: RoleAdmin},
		{in: " USER ", want: RoleUser},
		{in: "User", want: RoleUser},
		{in: "cliente", wantErr: true},
		{in: "", wantErr: true},
		{in: "root", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUser_FullNameAndState(t *testing.T) {
	u := &User{Name: "Ana", LastName: "Restrepo", State: StateActive}
	assert.Equal(t, "Ana Restrepo", u.FullName())
	assert.True(t, u.IsActive())

	u.State = StateInactive
	assert.False(t, u.IsActive())
}
