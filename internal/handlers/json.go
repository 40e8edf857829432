package handlers

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	applog "wasteless/internal/log"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func isJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func wantsJSON(r *http.Request) bool {
	return isJSONBody(r) || strings.Contains(r.Header.Get("Accept"), "application/json")
}

// isHTMX reports whether the request was issued by htmx, either directly or
// through a boosted link.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}
