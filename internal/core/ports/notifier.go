package ports

import (
	"context"
)

// Notifier sends templated emails through the external relay. Params are the
// flat template variables; nesting is not supported by the relay.
type Notifier interface {
	// Send renders the named template with the given params and dispatches
	// the email. The returned error carries the relay's HTTP status and
	// response text when the relay rejected the request.
	Send(ctx context.Context, templateID string, params map[string]string) error
}
