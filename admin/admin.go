// Package admin implements the controllers behind the admin screens.
// Each controller holds the current view of one remote resource list
// and applies the same mutation contract: validate locally, issue
// exactly one HTTP call upstream, re-fetch the authoritative list
// wholesale on success, and leave prior state untouched on failure.
package admin

import (
	"errors"
	"fmt"
	"log"

	"github.com/pcland/storefront-api/catalog/remote"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/validate"
)

// Converts a local validation failure into its notification.
// These never reach the network.
func validationNotification(fieldError *validate.FieldError) types.Notification {
	return types.Notification{
		Success: false,
		Kind:    types.NotificationValidation,
		Message: fieldError.Error(),
	}
}

// Converts a remote call failure into its notification,
// distinguishing the conflict (already exists) case from everything else
func failureNotification(err error, action string, resource string) types.Notification {
	var conflict *remote.ConflictError
	if errors.As(err, &conflict) {
		return types.Notification{
			Success: false,
			Kind:    types.NotificationConflict,
			Message: fmt.Sprintf("could not %s %s: it already exists", action, resource),
		}
	}

	log.Printf("could not %s %s on the remote admin API:\n%v\n", action, resource, err)
	return types.Notification{
		Success: false,
		Kind:    types.NotificationUpstream,
		Message: fmt.Sprintf("could not %s %s", action, resource),
	}
}

func successNotification(message string) types.Notification {
	return types.Notification{
		Success: true,
		Message: message,
	}
}
