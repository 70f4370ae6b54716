package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "portfolio-ai/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// QuotaErrorResponse is sent when a guest has used up the message quota.
type QuotaErrorResponse struct {
	Error string `json:"error"`
	Count int    `json:"count"`
	Limit int    `json:"limit"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps custom business-layer errors to appropriate HTTP status codes and formats
// a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var quotaErr *app_errors.QuotaError
	if errors.As(err, &quotaErr) {
		slog.Info("Responding with quota error", "count", quotaErr.Count, "limit", quotaErr.Limit)
		respondWithJSON(w, http.StatusTooManyRequests, QuotaErrorResponse{
			Error: quotaErr.Reason,
			Count: quotaErr.Count,
			Limit: quotaErr.Limit,
		})
		return
	}

	statusCode := statusFor(err)
	var message string

	var publicErr *app_errors.PublicError
	switch {
	case errors.As(err, &publicErr):
		// Public errors already carry a message meant for the visitor.
		message = publicErr.Message
	case errors.Is(err, app_errors.ErrNotFound):
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		// For validation errors, the error message from the service layer
		// is already descriptive and user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrPermission):
		message = "You do not have permission to perform this action."
	case errors.Is(err, app_errors.ErrUnauthorized):
		message = "Authentication is required."
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app_errors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, app_errors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, app_errors.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, app_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, app_errors.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeAndValidate reads a JSON body into dst and runs the struct validator.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return app_errors.Public(app_errors.ErrValidation, "Invalid request payload")
	}
	return validateRequest(dst)
}
