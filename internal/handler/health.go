package handler

import (
	"net/http"
	"time"
)

// HandleHealthz responds with a 200 OK envelope indicating the server is up.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "minifeed API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
