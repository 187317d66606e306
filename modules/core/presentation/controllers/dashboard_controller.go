package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/middleware"
)

type dashboardResponse struct {
	Role        user.Role `json:"role"`
	DisplayName string    `json:"displayName"`
	HostelID    string    `json:"hostelId,omitempty"`
}

// DashboardController owns the root route and the per-role dashboard
// entrypoints. The root route never renders anything: it sends anonymous
// visitors to the login page and everyone else to their role's home.
type DashboardController struct {
	app application.Application
}

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{app: app}
}

func (c *DashboardController) Key() string {
	return "/"
}

func (c *DashboardController) Register(r *mux.Router) {
	r.HandleFunc("/", c.Root).Methods(http.MethodGet)

	// Exact paths, not prefix subrouters: the feature modules own everything
	// below each role's home path.
	for _, role := range user.AllRoles() {
		guarded := middleware.RequireRoles(role)(http.HandlerFunc(c.Dashboard))
		r.Handle(role.HomeRoute(), guarded).Methods(http.MethodGet)
	}
}

func (c *DashboardController) Root(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, u.Role.HomeRoute(), http.StatusFound)
}

func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{
		Role:        u.Role,
		DisplayName: u.DisplayName,
		HostelID:    u.HostelID,
	})
}
