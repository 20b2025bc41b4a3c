package domain

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
)

// toolError turns a failed API call into the error text an MCP client
// shows to the model. Domain errors carry their localized message.
func toolError(action string, err error) error {
	if apperrors.GetCode(err) != apperrors.CodeUnknown {
		return fmt.Errorf("%s: %s", action, apperrors.UserMessage(err, apperrors.DefaultLocale))
	}
	return fmt.Errorf("%s: %w", action, err)
}

func withCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
