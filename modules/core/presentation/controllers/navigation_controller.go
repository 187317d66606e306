package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/middleware"
	"github.com/hosteldesk/portal/pkg/types"
)

type navigationResponse struct {
	Items  []types.NavigationItem `json:"items"`
	Active string                 `json:"active,omitempty"`
	Home   string                 `json:"home"`
}

// NavigationController serves the sidebar for the authenticated user's role.
// The list is chosen by role alone; the optional ?path= query resolves which
// item is active for the caller's current location.
type NavigationController struct {
	app      application.Application
	basePath string
}

func NewNavigationController(app application.Application) application.Controller {
	return &NavigationController{
		app:      app,
		basePath: "/api/navigation",
	}
}

func (c *NavigationController) Key() string {
	return c.basePath
}

func (c *NavigationController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireRoles())
	router.HandleFunc("", c.Get).Methods(http.MethodGet)
}

func (c *NavigationController) Get(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}
	list, ok := c.app.Navigation(u.Role)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "no_navigation", "no navigation registered for role")
		return
	}
	resp := navigationResponse{
		Items: list.Items,
		Home:  u.Role.HomeRoute(),
	}
	if path := r.URL.Query().Get("path"); path != "" {
		if active, matched := list.Resolve(path); matched {
			resp.Active = active
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
