package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/hosteldesk/portal/modules/core/domain/user"
	"github.com/hosteldesk/portal/modules/student/presentation/viewmodels"
	"github.com/hosteldesk/portal/modules/student/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/hostelapi"
	"github.com/hosteldesk/portal/pkg/httpapi"
	"github.com/hosteldesk/portal/pkg/middleware"
)

type createComplaintDTO struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	RoomNumber  string `json:"roomNumber"`
}

type StudentController struct {
	app      application.Application
	service  *services.StudentService
	basePath string
}

func NewStudentController(app application.Application) application.Controller {
	return &StudentController{
		app:      app,
		service:  app.Service(services.StudentService{}).(*services.StudentService),
		basePath: "/student/api",
	}
}

func (c *StudentController) Key() string {
	return c.basePath
}

func (c *StudentController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireRoles(user.Student))
	router.HandleFunc("/profile", c.Profile).Methods(http.MethodGet)
	router.HandleFunc("/complaints", c.Complaints).Methods(http.MethodGet)
	router.HandleFunc("/complaints", c.SubmitComplaint).Methods(http.MethodPost)
	router.HandleFunc("/complaints/{id}", c.Complaint).Methods(http.MethodGet)
}

func (c *StudentController) Profile(w http.ResponseWriter, r *http.Request) {
	u, sid, ok := sessionOf(w, r)
	if !ok {
		return
	}
	profile, err := c.service.Profile(r.Context(), sid, u.ID)
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, profile)
}

func (c *StudentController) Complaints(w http.ResponseWriter, r *http.Request) {
	_, sid, ok := sessionOf(w, r)
	if !ok {
		return
	}
	complaints, err := c.service.Complaints(r.Context(), sid)
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, viewmodels.NewComplaints(complaints))
}

func (c *StudentController) Complaint(w http.ResponseWriter, r *http.Request) {
	_, sid, ok := sessionOf(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	found, err := c.service.FindComplaint(r.Context(), sid, id)
	if errors.Is(err, services.ErrComplaintNotFound) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "complaint not found", nil)
		return
	}
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, viewmodels.NewComplaint(*found))
}

func (c *StudentController) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	u, sid, ok := sessionOf(w, r)
	if !ok {
		return
	}
	dto, ok := httpapi.DecodeBody[createComplaintDTO](w, r)
	if !ok {
		return
	}
	created, err := c.service.SubmitComplaint(r.Context(), sid, u.ID, hostelapi.CreateComplaint{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		RoomNumber:  dto.RoomNumber,
	})
	if err != nil {
		_ = httpapi.WriteBackendError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, viewmodels.NewComplaint(*created))
}

// sessionOf pulls the authenticated user and session cookie out of the
// request. The route guard runs first, so a miss here means the middleware
// stack is miswired.
func sessionOf(w http.ResponseWriter, r *http.Request) (*user.User, string, bool) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "unauthenticated", "no active session", nil)
		return nil, "", false
	}
	sid, err := composables.UseSessionID(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "unauthenticated", "no active session", nil)
		return nil, "", false
	}
	return u, sid, true
}
