package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	require.Equal(t, RoleAdmin, ParseRole("Admin"))
	require.Equal(t, RoleFamily, ParseRole("Family"))
	require.Equal(t, RoleGuest, ParseRole("Guest"))

	// unknown and case-mismatched values degrade to read-only
	require.Equal(t, RoleGuest, ParseRole("admin"))
	require.Equal(t, RoleGuest, ParseRole("Planner"))
	require.Equal(t, RoleGuest, ParseRole(""))
}

func TestCanEdit(t *testing.T) {
	require.True(t, RoleAdmin.CanEdit())
	require.True(t, RoleFamily.CanEdit())
	require.False(t, RoleGuest.CanEdit())
	require.False(t, Role("Planner").CanEdit())
}
