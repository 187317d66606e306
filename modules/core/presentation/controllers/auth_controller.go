package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/modules/core/services"
	"github.com/hosteldesk/portal/pkg/application"
	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/configuration"
	"github.com/hosteldesk/portal/pkg/hostelapi"
	"github.com/hosteldesk/portal/pkg/httpapi"
	"github.com/hosteldesk/portal/pkg/middleware"
)

type loginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginDTO struct {
	Token string `json:"token" validate:"required"`
}

type sessionResponse struct {
	User interface{} `json:"user"`
	Home string      `json:"home"`
}

type AuthController struct {
	app         application.Application
	authService *services.AuthService
	basePath    string
}

func NewAuthController(app application.Application) application.Controller {
	return &AuthController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
		basePath:    "/auth",
	}
}

func (c *AuthController) Key() string {
	return c.basePath
}

func (c *AuthController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()

	// Rate limiting applies to the credential exchanges only, never to
	// logout or session introspection.
	limited := func(h http.Handler) http.Handler { return h }
	conf := configuration.Use()
	if conf.RateLimit.Enabled {
		limited = middleware.IPRateLimitPeriod(conf.RateLimit.LoginAttempts, time.Minute)
	}
	router.Handle("/login", limited(http.HandlerFunc(c.Login))).Methods(http.MethodPost)
	router.Handle("/google", limited(http.HandlerFunc(c.GoogleLogin))).Methods(http.MethodPost)

	router.HandleFunc("/logout", c.Logout).Methods(http.MethodPost)
	router.HandleFunc("/me", c.Me).Methods(http.MethodGet)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	dto, ok := httpapi.DecodeBody[loginDTO](w, r)
	if !ok {
		return
	}
	u, cookie, err := c.authService.Login(r.Context(), hostelapi.Credentials{
		Email:    dto.Email,
		Password: dto.Password,
	})
	if err != nil {
		writeLoginError(w, err)
		return
	}
	http.SetCookie(w, cookie)
	writeJSON(w, http.StatusOK, sessionResponse{User: u, Home: u.Role.HomeRoute()})
}

func (c *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	dto, ok := httpapi.DecodeBody[googleLoginDTO](w, r)
	if !ok {
		return
	}
	u, cookie, err := c.authService.LoginWithGoogle(r.Context(), dto.Token)
	if err != nil {
		writeLoginError(w, err)
		return
	}
	http.SetCookie(w, cookie)
	writeJSON(w, http.StatusOK, sessionResponse{User: u, Home: u.Role.HomeRoute()})
}

// Logout clears the portal session cookie unconditionally. The backend
// invalidation happens inside the service and its failure never reaches the
// browser.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sid, _ := composables.UseSessionID(r.Context())
	cookie := c.authService.Logout(r.Context(), sid)
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: u, Home: u.Role.HomeRoute()})
}

func writeLoginError(w http.ResponseWriter, err error) {
	status, envelope := httpapi.MapBackendError(err)
	if status == http.StatusUnauthorized {
		envelope.Code = "invalid_credentials"
	}
	_ = httpapi.WriteJSON(w, status, envelope)
}
