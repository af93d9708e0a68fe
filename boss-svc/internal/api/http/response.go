package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bistro-boss/boss-svc/internal/domain"
)

// Gate rejections carry the exact messages existing clients compare against.
const (
	unauthorizedMessage = "Unauthorized Access"
	forbiddenMessage    = "Access Forbidden"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[boss-svc] encode response: %v", err)
	}
}

// writeError maps domain errors onto status codes. Unclassified failures
// are logged and reported without detail.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	switch status {
	case http.StatusUnauthorized:
		message = unauthorizedMessage
	case http.StatusForbidden:
		message = forbiddenMessage
	case http.StatusInternalServerError:
		log.Printf("[boss-svc] internal error: %v", err)
		message = "internal server error"
	}
	writeJSON(w, status, errorResponse{Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrPaymentFailed), errors.Is(err, domain.ErrProviderDown):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	return nil
}
