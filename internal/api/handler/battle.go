package handler

import (
	"encoding/json"
	"net/http"

	"github.com/skyfleet/starhunt/internal/api/middleware"
	"github.com/skyfleet/starhunt/internal/api/request"
	"github.com/skyfleet/starhunt/internal/api/response"
	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/services/battle"
)

// BattleHandler handles battle endpoints
type BattleHandler struct {
	engine battle.EngineInterface
	bus    *chat.Bus
}

// NewBattleHandler creates a new battle handler
func NewBattleHandler(engine battle.EngineInterface, bus *chat.Bus) *BattleHandler {
	return &BattleHandler{
		engine: engine,
		bus:    bus,
	}
}

// Engage handles POST /api/v1/battles. The request blocks for the
// duration of the battle; action directives arrive through the
// directive endpoint while this is in flight.
func (h *BattleHandler) Engage(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	report, err := h.engine.Engage(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BattleReportFromModel(report))
}

// Directive handles POST /api/v1/battles/directive
func (h *BattleHandler) Directive(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	var req request.DirectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Text == "" {
		WriteError(w, NewInvalidRequestError("text is required"))
		return
	}

	accepted := h.bus.Submit(id, req.Text)
	response.JSON(w, http.StatusOK, response.DirectiveResponse{Accepted: accepted})
}
