package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/modules/security/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/hostelapi"
	"github.com/hosteldesk/portal/pkg/httpapi"
	"github.com/hosteldesk/portal/pkg/middleware"
)

type updateVisitorDTO struct {
	Status string `json:"status" validate:"required,oneof='Checked In' 'Checked Out'"`
}

type visitorQuery struct {
	Status string `form:"status"`
	Date   string `form:"date"`
	Q      string `form:"q"`
}

type visitorsResponse struct {
	Visitors []hostelapi.Visitor   `json:"visitors"`
	Stats    services.VisitorStats `json:"stats"`
}

type VisitorController struct {
	app      application.Application
	service  *services.VisitorService
	basePath string
}

func NewVisitorController(app application.Application) application.Controller {
	return &VisitorController{
		app:      app,
		service:  app.Service(services.VisitorService{}).(*services.VisitorService),
		basePath: "/guard/api",
	}
}

func (c *VisitorController) Key() string {
	return c.basePath
}

func (c *VisitorController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireRoles(user.Guard))
	router.HandleFunc("/visitors", c.Visitors).Methods(http.MethodGet)
	router.HandleFunc("/visitors/{id}", c.Update).Methods(http.MethodPut)
}

func (c *VisitorController) Visitors(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDOf(w, r)
	if !ok {
		return
	}
	query, err := composables.UseQuery(&visitorQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "malformed_query", "invalid query parameters", nil)
		return
	}
	visitors, stats, err := c.service.Visitors(r.Context(), sid, services.VisitorFilter{
		Status: query.Status,
		Date:   query.Date,
		Query:  query.Q,
	})
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, visitorsResponse{Visitors: visitors, Stats: stats})
}

func (c *VisitorController) Update(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDOf(w, r)
	if !ok {
		return
	}
	dto, ok := httpapi.DecodeBody[updateVisitorDTO](w, r)
	if !ok {
		return
	}
	updated, err := c.service.UpdateStatus(r.Context(), sid, mux.Vars(r)["id"], dto.Status)
	if errors.Is(err, services.ErrVisitorNotFound) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "visitor not found", nil)
		return
	}
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func sessionIDOf(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, err := composables.UseSessionID(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "unauthenticated", "no active session", nil)
		return "", false
	}
	return sid, true
}
