package httpx

import (
	"encoding/json"
	"net"
	"net/http"
)

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// RespondJSON writes data as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError writes the structured error body {"error": {...}}.
func RespondError(w http.ResponseWriter, err *APIError) {
	RespondJSON(w, err.Status, errorEnvelope{Error: err})
}

// ClientIP extracts the caller's address for rate-limit keys. The RealIP
// middleware has already resolved proxy headers into RemoteAddr.
func ClientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if addr == "" {
		return "anonymous"
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
