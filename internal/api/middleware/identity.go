package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/skyfleet/starhunt/internal/api/apierr"
	"github.com/skyfleet/starhunt/internal/model"
)

type contextKey string

const participantContextKey contextKey = "participant"

// ParticipantHeader carries the chat-platform identity of the caller.
// The chat adapter is trusted to set it; the core never mints identities
// of its own.
const ParticipantHeader = "X-Participant-ID"

// Identity requires a participant id on the request and stores it in the
// context
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(ParticipantHeader))
			if id == "" {
				apierr.WriteError(w, apierr.NewInvalidRequestError(ParticipantHeader+" header is required"))
				return
			}

			ctx := context.WithValue(r.Context(), participantContextKey, model.ParticipantID(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetParticipant returns the participant id from the request context
func GetParticipant(ctx context.Context) model.ParticipantID {
	id, _ := ctx.Value(participantContextKey).(model.ParticipantID)
	return id
}

// MustGetParticipant returns the participant id or panics
func MustGetParticipant(ctx context.Context) model.ParticipantID {
	id := GetParticipant(ctx)
	if id == "" {
		panic("no participant in context - identity middleware not applied?")
	}
	return id
}
