package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON sends a JSON response with the given status code and payload,
// stamping the envelope's success flag from the status class.
func writeJSON(w http.ResponseWriter, status int, payload map[string]any) {
	body := map[string]any{"success": status < 400}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON failure envelope with a display message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

// writeServerError logs err and sends a 500 envelope. The error detail is
// suppressed unless debug mode is on.
func writeServerError(w http.ResponseWriter, debug bool, message string, err error) {
	slog.Error(message, "error", err)
	if debug {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": message,
			"error":   err.Error(),
		})
		return
	}
	writeError(w, http.StatusInternalServerError, message)
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
