package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the handlers' error envelope so middleware
// rejections look the same on the wire as handler rejections.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
