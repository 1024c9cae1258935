package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveUserType(t *testing.T) {
	cases := []struct {
		name     string
		hasAdmin bool
		hasStaff bool
		want     UserType
	}{
		{name: "admin wins over staff", hasAdmin: true, hasStaff: true, want: UserTypeAdmin},
		{name: "admin only", hasAdmin: true, hasStaff: false, want: UserTypeAdmin},
		{name: "staff only", hasAdmin: false, hasStaff: true, want: UserTypeStaff},
		{name: "neither defaults to staff", hasAdmin: false, hasStaff: false, want: UserTypeStaff},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveUserType(tc.hasAdmin, tc.hasStaff))
		})
	}
}

func TestUserTypeValid(t *testing.T) {
	assert.True(t, UserTypeAdmin.Valid())
	assert.True(t, UserTypeStaff.Valid())
	assert.False(t, UserType("superuser").Valid())
	assert.False(t, UserType("").Valid())
}
