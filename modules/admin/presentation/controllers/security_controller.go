package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/hostelapi"
	"github.com/hosteldesk/portal/pkg/httpapi"
	"github.com/hosteldesk/portal/pkg/middleware"
)

type createSecurityDTO struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	HostelID string `json:"hostelId"`
}

// SecurityController covers the admin's account management surface:
// provisioning guard accounts and listing hostels for the assignment picker.
type SecurityController struct {
	app      application.Application
	api      *hostelapi.Client
	basePath string
}

func NewSecurityController(app application.Application) application.Controller {
	return &SecurityController{
		app:      app,
		api:      app.Service(hostelapi.Client{}).(*hostelapi.Client),
		basePath: "/admin/api",
	}
}

func (c *SecurityController) Key() string {
	return c.basePath
}

func (c *SecurityController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireRoles(user.Admin))
	router.HandleFunc("/security", c.AddSecurity).Methods(http.MethodPost)
	router.HandleFunc("/hostels", c.Hostels).Methods(http.MethodGet)
}

func (c *SecurityController) AddSecurity(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDOf(w, r)
	if !ok {
		return
	}
	dto, ok := httpapi.DecodeBody[createSecurityDTO](w, r)
	if !ok {
		return
	}
	account, err := c.api.AddSecurity(r.Context(), sid, hostelapi.CreateSecurityAccount{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: dto.Password,
		HostelID: dto.HostelID,
	})
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	if account == nil {
		_ = httpapi.WriteError(w, http.StatusBadGateway, "upstream_error", "account creation returned no record, retry the request", nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, account)
}

func (c *SecurityController) Hostels(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDOf(w, r)
	if !ok {
		return
	}
	hostels, err := c.api.Hostels(r.Context(), sid)
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, hostels)
}

func sessionIDOf(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, err := composables.UseSessionID(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "unauthenticated", "no active session", nil)
		return "", false
	}
	return sid, true
}
