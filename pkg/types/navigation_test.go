package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func studentList() NavigationList {
	return NavigationList{
		DefaultPath: "/student",
		Items: []NavigationItem{
			{Name: "Dashboard", Icon: "gauge", Section: SectionMain, Target: NavigationLink{Path: "/student"}},
			{Name: "Complaints", Icon: "clipboard", Section: SectionMain, Target: NavigationLink{Path: "/student/complaints"}},
			{Name: "Profile", Icon: "user", Section: SectionBottom, Target: NavigationLink{Path: "/student/profile"}},
			{Name: "Logout", Icon: "sign-out", Section: SectionBottom, Target: NavigationCommand{Command: "logout"}},
		},
	}
}

func TestResolve_FirstMatchWinsOnDuplicatePaths(t *testing.T) {
	list := NavigationList{
		DefaultPath: "/a",
		Items: []NavigationItem{
			{Name: "First", Target: NavigationLink{Path: "/a"}},
			{Name: "Second", Target: NavigationLink{Path: "/a"}},
		},
	}

	name, ok := list.Resolve("/a")
	require.True(t, ok)
	require.Equal(t, "First", name)
}

func TestResolve_RootActivatesDefaultPathItem(t *testing.T) {
	list := studentList()

	name, ok := list.Resolve("/")
	require.True(t, ok)
	require.Equal(t, "Dashboard", name)
}

func TestResolve_ExactMatchWins(t *testing.T) {
	list := studentList()

	name, ok := list.Resolve("/student/complaints")
	require.True(t, ok)
	require.Equal(t, "Complaints", name)
}

func TestResolve_NoMatchActivatesNothing(t *testing.T) {
	list := studentList()

	_, ok := list.Resolve("/student/unknown")
	require.False(t, ok)
}

func TestResolve_CommandItemsNeverMatch(t *testing.T) {
	list := NavigationList{
		DefaultPath: "/x",
		Items: []NavigationItem{
			{Name: "Logout", Section: SectionBottom, Target: NavigationCommand{Command: "logout"}},
		},
	}

	_, ok := list.Resolve("logout")
	require.False(t, ok)
	_, ok = list.Resolve("/x")
	require.False(t, ok)
}

func TestValidate_RejectsDuplicateNames(t *testing.T) {
	list := NavigationList{
		Items: []NavigationItem{
			{Name: "Dashboard", Target: NavigationLink{Path: "/a"}},
			{Name: "Dashboard", Target: NavigationLink{Path: "/b"}},
		},
	}

	require.Error(t, list.Validate())
}

func TestValidate_RejectsMissingTarget(t *testing.T) {
	list := NavigationList{
		Items: []NavigationItem{
			{Name: "Dashboard"},
		},
	}

	require.Error(t, list.Validate())
}

func TestNavigationItem_MarshalJSON(t *testing.T) {
	link := NavigationItem{Name: "Dashboard", Icon: "gauge", Section: SectionMain, Target: NavigationLink{Path: "/student"}}
	b, err := json.Marshal(link)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Dashboard","icon":"gauge","section":"main","path":"/student"}`, string(b))

	command := NavigationItem{Name: "Logout", Icon: "sign-out", Section: SectionBottom, Target: NavigationCommand{Command: "logout"}}
	b, err = json.Marshal(command)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Logout","icon":"sign-out","section":"bottom","command":"logout"}`, string(b))
}

func TestSection_FiltersInOrder(t *testing.T) {
	list := studentList()

	bottom := list.Section(SectionBottom)
	require.Len(t, bottom, 2)
	require.Equal(t, "Profile", bottom[0].Name)
	require.Equal(t, "Logout", bottom[1].Name)
}
