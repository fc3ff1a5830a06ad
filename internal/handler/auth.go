package handler

import (
	"errors"
	"log"
	"net/http"

	"miniblog/internal/model"
	"miniblog/internal/service"
	"miniblog/internal/session"
	"miniblog/internal/view"
)

// AuthHandler serves the registration and login pages and manages the
// session lifecycle.
type AuthHandler struct {
	users    *service.UserService
	sessions *session.Manager
	views    *view.Renderer
}

func NewAuthHandler(users *service.UserService, sessions *session.Manager, views *view.Renderer) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, views: views}
}

type authFormData struct {
	Username string
	Email    string
}

type authPageData struct {
	page
	Errors   []string
	FormData authFormData
}

// ShowRegister renders the registration form. Logged-in users are sent to
// their dashboard instead.
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Resolve(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.views.Render(w, http.StatusOK, "register.html", authPageData{})
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, http.StatusBadRequest, "register.html", authPageData{
			Errors: []string{"Invalid form data"},
		})
		return
	}

	req := model.RegisterRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	formData := authFormData{Username: req.Username, Email: req.Email}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		data := authPageData{FormData: formData}
		if ve, ok := model.AsValidationError(err); ok {
			data.Errors = ve.Messages
		} else if errors.Is(err, model.ErrUserExists) {
			data.Errors = []string{"Username or email already taken"}
		} else {
			log.Printf("[ERROR] register: %v", err)
			data.Errors = []string{"Something went wrong. Please try again."}
		}
		h.views.Render(w, http.StatusOK, "register.html", data)
		return
	}

	if err := h.sessions.Issue(w, r, user.ID); err != nil {
		log.Printf("[ERROR] issue session after register: %v", err)
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ShowLogin renders the login form. Logged-in users are sent to their
// dashboard instead.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Resolve(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.views.Render(w, http.StatusOK, "login.html", authPageData{})
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, http.StatusBadRequest, "login.html", authPageData{
			Errors: []string{"Invalid form data"},
		})
		return
	}

	req := model.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	formData := authFormData{Username: req.Username}

	user, err := h.users.Login(r.Context(), &req)
	if err != nil {
		data := authPageData{FormData: formData}
		if ve, ok := model.AsValidationError(err); ok {
			data.Errors = ve.Messages
		} else if errors.Is(err, model.ErrInvalidCredentials) {
			data.Errors = []string{"Invalid username or password"}
		} else {
			log.Printf("[ERROR] login: %v", err)
			data.Errors = []string{"Something went wrong. Please try again."}
		}
		h.views.Render(w, http.StatusOK, "login.html", data)
		return
	}

	if err := h.sessions.Issue(w, r, user.ID); err != nil {
		log.Printf("[ERROR] issue session after login: %v", err)
		h.views.Render(w, http.StatusInternalServerError, "login.html", authPageData{
			FormData: formData,
			Errors:   []string{"Something went wrong. Please try again."},
		})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout destroys the session and returns to the landing page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}
