package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_HasAny(t *testing.T) {
	tests := []struct {
		name     string
		roles    Roles
		required []Role
		want     bool
	}{
		{name: "single match", roles: Roles{RoleAdmin}, required: []Role{RoleAdmin, RoleLeadGuide}, want: true},
		{name: "second role matches", roles: Roles{RoleUser, RoleGuide}, required: []Role{RoleGuide}, want: true},
		{name: "no match", roles: Roles{RoleUser}, required: []Role{RoleAdmin, RoleLeadGuide}, want: false},
		{name: "empty roles", roles: nil, required: []Role{RoleUser}, want: false},
		{name: "nothing required", roles: Roles{RoleUser}, required: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.roles.HasAny(tt.required...))
		})
	}
}

func TestRolesFromStrings_DropsUnknownAndDuplicates(t *testing.T) {
	got := RolesFromStrings([]string{"user", "superuser", "lead-guide", "user"})

	assert.Equal(t, Roles{RoleUser, RoleLeadGuide}, got)
	assert.True(t, got.Valid())
	assert.False(t, Roles{}.Valid())
	assert.False(t, Roles{"root"}.Valid())
}
