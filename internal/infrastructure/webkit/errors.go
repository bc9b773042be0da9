package webkit

import (
	"errors"
	"fmt"
	"strings"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/focusmode/internal/application/port"
)

var (
	// ErrViewUnavailable is returned when WebKitGTK cannot create a view.
	ErrViewUnavailable = errors.New("webkit: web view not available")
	// ErrHandlerRegistration is returned when the script message handler
	// cannot be registered.
	ErrHandlerRegistration = errors.New("webkit: failed to register script message handler")
)

// invalidatedEvalErrors are evaluation failures caused by the page going
// away underneath a pending call.
var invalidatedEvalErrors = []string{
	"operation was canceled",
	"javascript execution context was destroyed",
}

// ignoredEvalErrors come from calls that ran but whose result could not be
// converted back.
var ignoredEvalErrors = []string{
	"unsupported result type",
}

// classifyEvalError maps an evaluation failure to the page port errors and
// returns a normalized signature for log aggregation. A nil error means the
// call ran and the failure can be ignored.
func classifyEvalError(err error) (mapped error, signature string) {
	msg := normalizeErrorSignature(err.Error())
	signature = "evaluate_error:" + msg
	for _, s := range ignoredEvalErrors {
		if strings.Contains(msg, s) {
			return nil, signature
		}
	}
	for _, s := range invalidatedEvalErrors {
		if strings.Contains(msg, s) {
			return fmt.Errorf("%w: %s", port.ErrHostInvalidated, msg), signature
		}
	}
	return fmt.Errorf("evaluate page script: %w", err), signature
}

func normalizeErrorSignature(msg string) string {
	fields := strings.Fields(strings.ToLower(msg))
	if len(fields) == 0 {
		return "empty"
	}
	return strings.Join(fields, " ")
}

func terminationReason(reason webkit.WebProcessTerminationReason) string {
	switch reason {
	case webkit.WebProcessCrashed:
		return "crashed"
	case webkit.WebProcessExceededMemoryLimit:
		return "exceeded_memory"
	case webkit.WebProcessTerminatedByAPI:
		return "terminated_by_api"
	default:
		return "unknown"
	}
}
