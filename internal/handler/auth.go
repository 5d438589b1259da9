package handler

import (
	"errors"
	"net/http"

	"github.com/jmcvie/minifeed/internal/domain"
	"github.com/jmcvie/minifeed/internal/service"
)

// AuthHandler handles registration, login, and current-user requests.
type AuthHandler struct {
	auth  *service.AuthService
	debug bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, debug bool) *AuthHandler {
	return &AuthHandler{auth: auth, debug: debug}
}

// HandleRegister processes a registration request.
// POST /auth/register
// Request:  {"name":"...","email":"...","password":"...","bio":"..."}
// Response: 201 {"success":true,"message":"...","user":{...},"token":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Bio      string `json:"bio"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "An account with that email already exists.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeServerError(w, h.debug, "Server error while registering user.", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    toUserDTO(user),
		"token":   token,
	})
}

// HandleLogin processes a login request.
// POST /auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"success":true,"message":"...","user":{...},"token":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		writeServerError(w, h.debug, "Server error while logging in.", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    toUserDTO(user),
		"token":   token,
	})
}

// HandleMe returns the currently authenticated user.
// GET /auth/me
// Response: 200 {"success":true,"user":{...}}
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}
