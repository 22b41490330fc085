package chat

import (
	"context"
	"sync"
	"time"

	"github.com/skyfleet/starhunt/internal/model"
)

// Bus is an in-process DirectiveSource. The adapter pushes each
// participant's messages in via Submit; a battle awaiting that
// participant's next action receives exactly one of them.
type Bus struct {
	mu    sync.Mutex
	boxes map[model.ParticipantID]chan string
}

// NewBus creates a new directive bus
func NewBus() *Bus {
	return &Bus{
		boxes: make(map[model.ParticipantID]chan string),
	}
}

var _ DirectiveSource = (*Bus)(nil)

// Submit delivers a directive from the given participant. Returns false
// when nothing is waiting on that participant, so the adapter can tell
// the user there is no battle to act in.
func (b *Bus) Submit(id model.ParticipantID, text string) bool {
	b.mu.Lock()
	box, ok := b.boxes[id]
	b.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case box <- text:
		return true
	default:
		// Waiter present but mid-handoff; directive is dropped rather
		// than queued so stale actions never resolve a later round
		return false
	}
}

// Await blocks for the next directive from exactly this participant,
// bounded by the timeout. Expiry is ErrDirectiveTimeout; context
// cancellation propagates as the context's error.
func (b *Bus) Await(ctx context.Context, id model.ParticipantID, timeout time.Duration) (string, error) {
	box := make(chan string, 1)

	b.mu.Lock()
	b.boxes[id] = box
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.boxes, id)
		b.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case text := <-box:
		return text, nil
	case <-timer.C:
		return "", ErrDirectiveTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
