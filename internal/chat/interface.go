package chat

import (
	"context"
	"errors"
	"time"

	"github.com/skyfleet/starhunt/internal/model"
)

// ErrDirectiveTimeout is returned when no directive arrives from the
// awaited participant within the deadline
var ErrDirectiveTimeout = errors.New("timed out waiting for directive")

// Notifier delivers render events to the chat adapter for presentation.
// The core never formats rich visuals itself.
type Notifier interface {
	Send(ctx context.Context, event model.RenderEvent) error
}

// DirectiveSource supplies the next textual directive from a specific
// participant, bounded by a timeout. Directives from other participants
// never satisfy the wait.
type DirectiveSource interface {
	Await(ctx context.Context, id model.ParticipantID, timeout time.Duration) (string, error)
}

// ChannelResolver maps the chat platform's channel topology for the
// spawner: the eligible channel set at startup and per-publish
// resolvability checks.
type ChannelResolver interface {
	Eligible(ctx context.Context) ([]model.ChannelID, error)
	Resolve(ctx context.Context, channel model.ChannelID) error
}
