package common

import (
	"encoding/json"
	"net/http"
)

// Envelope is the fixed response shape for every endpoint: exactly one of
// Data/Error is non-null depending on Success.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *string     `json:"error"`
}

func RespondWithData(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, Envelope{Success: true, Data: data, Error: nil})
}

func RespondWithError(w http.ResponseWriter, code int, errorCode string) {
	writeJSON(w, code, Envelope{Success: false, Data: nil, Error: &errorCode})
}

// RespondWithServiceError maps a service-layer error onto the envelope using
// the fixed status and error-code tables.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	RespondWithError(w, HTTPStatusFromError(err), ErrorCodeFromError(err))
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"data":null,"error":"INTERNAL_SERVER_ERROR"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
