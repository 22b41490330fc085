package handler

import (
	"net/http"

	"github.com/skyfleet/starhunt/internal/api/middleware"
	"github.com/skyfleet/starhunt/internal/api/response"
	"github.com/skyfleet/starhunt/internal/services/economy"
)

// ParticipantHandler handles ledger record endpoints
type ParticipantHandler struct {
	economy economy.ControllerInterface
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(economyController economy.ControllerInterface) *ParticipantHandler {
	return &ParticipantHandler{
		economy: economyController,
	}
}

// Register handles POST /api/v1/participants
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	rec, err := h.economy.Register(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ParticipantFromModel(rec))
}

// GetMe handles GET /api/v1/participants/me
func (h *ParticipantHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	rec, err := h.economy.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantFromModel(rec))
}

// Claim handles POST /api/v1/participants/me/claim
func (h *ParticipantHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	amount, rec, err := h.economy.Claim(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ClaimResponse{
		Amount:      amount,
		Participant: response.ParticipantFromModel(rec),
	})
}
