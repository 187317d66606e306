package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/types"
)

func TestNavigationForRole_EveryRoleHasValidList(t *testing.T) {
	for _, role := range user.AllRoles() {
		list := NavigationForRole(role)
		require.NotEmpty(t, list.Items, "role %s", role)
		require.NoError(t, list.Validate(), "role %s", role)
		require.Equal(t, role.HomeRoute(), list.DefaultPath, "role %s", role)
	}
}

func TestNavigationForRole_DefaultPathResolvesOnRoot(t *testing.T) {
	for _, role := range user.AllRoles() {
		list := NavigationForRole(role)
		name, ok := list.Resolve("/")
		require.True(t, ok, "role %s", role)
		require.Equal(t, "Dashboard", name, "role %s", role)
	}
}

func TestNavigationForRole_LogoutIsBottomCommand(t *testing.T) {
	for _, role := range user.AllRoles() {
		list := NavigationForRole(role)
		bottom := list.Section(types.SectionBottom)
		require.NotEmpty(t, bottom, "role %s", role)
		last := bottom[len(bottom)-1]
		require.Equal(t, "Logout", last.Name)
		_, isLink := last.Path()
		require.False(t, isLink)
	}
}

func TestNavigationForRole_UnknownRoleIsEmpty(t *testing.T) {
	list := NavigationForRole(user.Role("superuser"))
	require.Empty(t, list.Items)
}
