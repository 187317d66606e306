package core

import (
	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/types"
)

// LogoutItem appears at the bottom of every role's navigation.
var LogoutItem = types.NavigationItem{
	Name:    "Logout",
	Icon:    "sign-out",
	Section: types.SectionBottom,
	Target:  types.NavigationCommand{Command: "logout"},
}

var StudentNavigation = types.NavigationList{
	DefaultPath: "/student",
	Items: []types.NavigationItem{
		{Name: "Dashboard", Icon: "gauge", Section: types.SectionMain, Target: types.NavigationLink{Path: "/student"}},
		{Name: "Complaints", Icon: "clipboard", Section: types.SectionMain, Target: types.NavigationLink{Path: "/student/complaints"}},
		{Name: "Lost and Found", Icon: "magnifying-glass", Section: types.SectionMain, Target: types.NavigationLink{Path: "/student/lost-and-found"}},
		{Name: "Events", Icon: "calendar", Section: types.SectionMain, Target: types.NavigationLink{Path: "/student/events"}},
		{Name: "Profile", Icon: "user", Section: types.SectionBottom, Target: types.NavigationLink{Path: "/student/profile"}},
		LogoutItem,
	},
}

var WardenNavigation = types.NavigationList{
	DefaultPath: "/warden",
	Items: []types.NavigationItem{
		{Name: "Dashboard", Icon: "gauge", Section: types.SectionMain, Target: types.NavigationLink{Path: "/warden"}},
		{Name: "Complaints", Icon: "clipboard", Section: types.SectionMain, Target: types.NavigationLink{Path: "/warden/complaints"}},
		{Name: "Students", Icon: "users", Section: types.SectionMain, Target: types.NavigationLink{Path: "/warden/students"}},
		{Name: "Visitors", Icon: "user-friends", Section: types.SectionMain, Target: types.NavigationLink{Path: "/warden/visitors"}},
		{Name: "Profile", Icon: "user", Section: types.SectionBottom, Target: types.NavigationLink{Path: "/warden/profile"}},
		LogoutItem,
	},
}

var GuardNavigation = types.NavigationList{
	DefaultPath: "/guard",
	Items: []types.NavigationItem{
		{Name: "Dashboard", Icon: "gauge", Section: types.SectionMain, Target: types.NavigationLink{Path: "/guard"}},
		{Name: "Visitors", Icon: "user-friends", Section: types.SectionMain, Target: types.NavigationLink{Path: "/guard/visitors"}},
		{Name: "Entries", Icon: "list-checks", Section: types.SectionMain, Target: types.NavigationLink{Path: "/guard/entries"}},
		LogoutItem,
	},
}

var MaintenanceNavigation = types.NavigationList{
	DefaultPath: "/maintenance",
	Items: []types.NavigationItem{
		{Name: "Dashboard", Icon: "gauge", Section: types.SectionMain, Target: types.NavigationLink{Path: "/maintenance"}},
		{Name: "Complaints", Icon: "wrench", Section: types.SectionMain, Target: types.NavigationLink{Path: "/maintenance/complaints"}},
		LogoutItem,
	},
}

var AdminNavigation = types.NavigationList{
	DefaultPath: "/admin",
	Items: []types.NavigationItem{
		{Name: "Dashboard", Icon: "gauge", Section: types.SectionMain, Target: types.NavigationLink{Path: "/admin"}},
		{Name: "Hostels", Icon: "buildings", Section: types.SectionMain, Target: types.NavigationLink{Path: "/admin/hostels"}},
		{Name: "Wardens", Icon: "user-tie", Section: types.SectionMain, Target: types.NavigationLink{Path: "/admin/wardens"}},
		{Name: "Security", Icon: "shield", Section: types.SectionMain, Target: types.NavigationLink{Path: "/admin/security"}},
		{Name: "Complaints", Icon: "clipboard", Section: types.SectionMain, Target: types.NavigationLink{Path: "/admin/complaints"}},
		LogoutItem,
	},
}

// NavigationForRole is total over the closed role set.
func NavigationForRole(role user.Role) types.NavigationList {
	switch role {
	case user.Student:
		return StudentNavigation
	case user.Warden:
		return WardenNavigation
	case user.Guard:
		return GuardNavigation
	case user.Maintenance:
		return MaintenanceNavigation
	case user.Admin:
		return AdminNavigation
	default:
		return types.NavigationList{}
	}
}
