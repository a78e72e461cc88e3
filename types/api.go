package types

// ErrorResponse is the generic error JSON shape returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating a single field or form,
// produced synchronously and consumed immediately by the caller
type ValidationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Notification kinds, used to distinguish how a mutation failed
// (an empty kind means the mutation succeeded)
const (
	NotificationValidation = "validation"
	NotificationConflict   = "conflict"
	NotificationUpstream   = "upstream"
)

// Notification is the user-facing outcome of an admin mutation
type Notification struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}
