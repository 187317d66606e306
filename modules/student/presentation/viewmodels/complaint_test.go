package viewmodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/portal/pkg/hostelapi"
)

func TestStatusColor(t *testing.T) {
	cases := map[string]string{
		"pending":     "yellow",
		"in-progress": "blue",
		"resolved":    "green",
		"rejected":    "red",
		"weird":       "gray",
		"":            "gray",
	}
	for status, want := range cases {
		require.Equal(t, want, StatusColor(status), "status %q", status)
	}
}

func TestPriorityColor(t *testing.T) {
	cases := map[string]string{
		"low":    "green",
		"medium": "yellow",
		"high":   "red",
		"":       "gray",
	}
	for priority, want := range cases {
		require.Equal(t, want, PriorityColor(priority), "priority %q", priority)
	}
}

func TestNewComplaint_CarriesColors(t *testing.T) {
	vm := NewComplaint(hostelapi.Complaint{
		ID:       "c1",
		Title:    "Leaky tap",
		Status:   "in-progress",
		Priority: "high",
	})

	require.Equal(t, "blue", vm.StatusColor)
	require.Equal(t, "red", vm.PriorityColor)
}

func TestNewComplaints_PreservesOrder(t *testing.T) {
	vms := NewComplaints([]hostelapi.Complaint{
		{ID: "c1", Status: "pending"},
		{ID: "c2", Status: "resolved"},
	})

	require.Len(t, vms, 2)
	require.Equal(t, "c1", vms[0].ID)
	require.Equal(t, "c2", vms[1].ID)
}
