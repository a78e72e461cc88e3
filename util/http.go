package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pcland/storefront-api/catalog"
	"github.com/pcland/storefront-api/catalog/remote"
	"github.com/pcland/storefront-api/types"
)

// ResponseCodeFromError resolves a status code from an error
func ResponseCodeFromError(err error) int {
	var conflictError *remote.ConflictError
	if errors.As(err, &conflictError) {
		return http.StatusConflict
	}

	var statusError *remote.StatusError
	if errors.As(err, &statusError) {
		return http.StatusBadGateway
	}

	var notLoadedError *catalog.SnapshotNotLoadedError
	if errors.As(err, &notLoadedError) {
		return http.StatusServiceUnavailable
	}

	var productNotFoundError *catalog.ProductNotFoundError
	var itemNotFoundError *catalog.ItemNotFoundError
	if errors.As(err, &productNotFoundError) || errors.As(err, &itemNotFoundError) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// NotificationStatus resolves the status code for an admin mutation
// outcome: the given code on success, and otherwise a code matching
// how the mutation failed
func NotificationStatus(notification types.Notification, successCode int) int {
	if notification.Success {
		return successCode
	}

	switch notification.Kind {
	case types.NotificationValidation:
		return http.StatusBadRequest
	case types.NotificationConflict:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// Error creates a standardized error response
func Error(w http.ResponseWriter, originalError error) {
	ErrorWithCode(w, originalError, ResponseCodeFromError(originalError))
}

// ErrorWithCode creates a standardized error response with a status code
func ErrorWithCode(w http.ResponseWriter, originalError error, statusCode int) {
	response := types.ErrorResponse{
		Message: fmt.Sprint(originalError),
	}

	jsonResponse, err := json.Marshal(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	w.Write(jsonResponse)
}
