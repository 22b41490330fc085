package handler

import (
	"net/http"

	"github.com/skyfleet/starhunt/internal/api/middleware"
	"github.com/skyfleet/starhunt/internal/api/response"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/services/economy"
)

// EncounterHandler handles encounter endpoints
type EncounterHandler struct {
	slot    *encounter.Slot
	economy economy.ControllerInterface
}

// NewEncounterHandler creates a new encounter handler
func NewEncounterHandler(slot *encounter.Slot, economyController economy.ControllerInterface) *EncounterHandler {
	return &EncounterHandler{
		slot:    slot,
		economy: economyController,
	}
}

// Get handles GET /api/v1/encounter
func (h *EncounterHandler) Get(w http.ResponseWriter, r *http.Request) {
	enc, err := h.slot.Peek()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EncounterFromModel(enc))
}

// Capture handles POST /api/v1/encounter/capture
func (h *EncounterHandler) Capture(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	enc, rec, err := h.economy.Capture(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CaptureResponse{
		Encounter:   response.EncounterFromModel(enc),
		Participant: response.ParticipantFromModel(rec),
	})
}
