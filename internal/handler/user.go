package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jmcvie/minifeed/internal/domain"
	"github.com/jmcvie/minifeed/internal/service"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	users *service.UserService
	debug bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, debug bool) *UserHandler {
	return &UserHandler{users: users, debug: debug}
}

// HandleListUsers returns users, optionally filtered by a search term.
// GET /users?search&limit
// Response: 200 {"success":true,"users":[...],"count":n}
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	limit := queryInt(r, "limit")

	users, err := h.users.ListUsers(r.Context(), search, limit)
	if err != nil {
		writeServerError(w, h.debug, "Server error while fetching users.", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": toUserDTOs(users),
		"count": len(users),
	})
}

// HandleGetProfile returns a user's public profile.
// GET /users/{userId}
// Response: 200 {"success":true,"user":{...}}
func (h *UserHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	user, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		writeServerError(w, h.debug, "Server error while fetching user.", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleUpdateProfile updates the authenticated user's name and bio.
// PUT /users/profile
// Request:  {"name":"...","bio":"..."}
// Response: 200 {"success":true,"message":"...","user":{...}}
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	var req struct {
		Name string `json:"name"`
		Bio  string `json:"bio"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.ID, req.Name, req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		default:
			writeServerError(w, h.debug, "Server error while updating profile.", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    toUserDTO(updated),
	})
}
