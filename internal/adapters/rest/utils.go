package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Akergez/2572371-six-cities-4/internal/contracts"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

const maxBodyBytes = 1 << 20

// WriteJSONError sends {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusFromError maps an error kind to its HTTP status.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, contracts.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeUseCaseError answers with the status of err's kind. Unexpected
// errors are logged and their text is not exposed.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed with an unexpected error", err, nil)
		WriteJSONError(w, status, "Internal server error")
		return
	}
	logger.Debug("Request rejected", port.Fields{"status_code": status, "reason": err.Error()})
	WriteJSONError(w, status, err.Error())
}

// decodeValidated reads the body, checks it against the request schema and
// decodes it into dst.
func decodeValidated(w http.ResponseWriter, r *http.Request, requestType string, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", contracts.ErrInvalidPayload, err)
	}
	if err := contracts.ValidateRequest(requestType, contracts.V1, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", contracts.ErrInvalidPayload, err)
	}
	return nil
}

// getLimitOrDefault returns 0 when no limit is given, letting the use case apply its default.
func getLimitOrDefault(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrBadRequest)
	}
	return limit, nil
}
