package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "wasteless/internal/log"
	"wasteless/internal/views/pages"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login renders the sign-in form and processes sign-in submissions. JSON
// submissions receive a JSON answer, form posts are redirected.
func Login(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling login request", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			applog.Debug(r.Context(), "active session detected, redirecting to app")
			redirectToApp(w, r)
			return
		}
		message := ""
		if sessionManager != nil {
			message = sessionManager.PopString(r.Context(), sessionLoginMessageKey)
		}
		renderLogin(w, r, message, "")
	case http.MethodPost:
		if sessionManager == nil || database == nil {
			applog.Debug(r.Context(), "authentication dependencies unavailable", "hasSession", sessionManager != nil, "hasDatabase", database != nil)
			http.Error(w, "authentication not available", http.StatusServiceUnavailable)
			return
		}
		if isJSONBody(r) {
			loginJSON(w, r)
			return
		}
		loginForm(w, r)
	default:
		applog.Debug(r.Context(), "method not allowed for login", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func loginJSON(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(r.Context(), "invalid login payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, ok := authenticate(r, email, payload.Password)
	if !ok {
		message := sessionManager.PopString(r.Context(), sessionLoginMessageKey)
		applog.Debug(r.Context(), "authentication failed", "email", strings.ToLower(email))
		writeJSONError(w, http.StatusUnauthorized, message)
		return
	}

	applog.Debug(r.Context(), "authentication succeeded", "email", strings.ToLower(email))
	writeJSON(w, http.StatusOK, loginResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

func loginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse login form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		applog.Debug(r.Context(), "login form missing credentials", "emailPresent", email != "", "passwordPresent", password != "")
		renderLogin(w, r, "Email and password are required.", email)
		return
	}

	if _, ok := authenticate(r, email, password); !ok {
		applog.Debug(r.Context(), "authentication failed", "email", strings.ToLower(email))
		message := sessionManager.PopString(r.Context(), sessionLoginMessageKey)
		if message == "" {
			message = "We were unable to sign you in. Please try again."
		}
		renderLogin(w, r, message, email)
		return
	}

	applog.Debug(r.Context(), "authentication succeeded", "email", strings.ToLower(email))
	redirectToApp(w, r)
}

func renderLogin(w http.ResponseWriter, r *http.Request, message, email string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Login(message, email).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render login component", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
