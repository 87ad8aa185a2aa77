package transitapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstreamError reports a failed upstream call. The message passes
// through verbatim so callers see the upstream's own status and body.
func writeUpstreamError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadGateway, err.Error())
}
