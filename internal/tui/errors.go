package tui

import (
	"errors"
	"strings"

	"github.com/savasana/yoga-client/internal/service"
)

// genericErrMsg is the one indicator shown for authentication, registration
// and mutation failures. No distinction is surfaced between 4xx and 5xx.
const genericErrMsg = "An error occurred"

// humanizeError keeps permission problems distinguishable and collapses
// everything else into the generic indicator.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Please log in first"
	case errors.Is(err, service.ErrPermissionDenied):
		return "Admins only"
	case strings.Contains(err.Error(), "connection refused"):
		return "Server unavailable"
	default:
		return genericErrMsg
	}
}
