// Package httpjson holds the JSON response helpers shared by the API
// handlers. Success bodies are handler-defined; every error body is
// {"error": "<message>"}.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write sets Content-Type to application/json, writes status, and
// encodes v as the response body.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, map[string]string{"error": message})
}

// Decode reads the request body into v, rejecting unknown fields so
// typos in payloads fail loudly instead of silently dropping data.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
