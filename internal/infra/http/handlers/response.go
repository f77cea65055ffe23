package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ironlady/leadbot/internal/usecase"
)

// Every endpoint answers the same envelope the front-end expects:
// {success, message?, data?}.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Message: message})
}

// writeUsecaseError maps the usecase error taxonomy onto HTTP statuses.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeValidation:
			writeError(w, http.StatusBadRequest, domainErr.Message)
		case usecase.CodeNotFound:
			writeError(w, http.StatusNotFound, domainErr.Message)
		case usecase.CodeConflict:
			writeError(w, http.StatusConflict, domainErr.Message)
		default:
			writeError(w, http.StatusInternalServerError, domainErr.Message)
		}
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func getClientIP(r *http.Request) string {
	// X-Forwarded-For holds a comma-separated chain; the client is first.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
