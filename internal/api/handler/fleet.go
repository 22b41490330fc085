package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skyfleet/starhunt/internal/api/middleware"
	"github.com/skyfleet/starhunt/internal/api/request"
	"github.com/skyfleet/starhunt/internal/api/response"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/services/economy"
)

// FleetHandler handles catalog browsing and roster mutation endpoints
type FleetHandler struct {
	catalog catalog.ServiceInterface
	economy economy.ControllerInterface
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(catalogService catalog.ServiceInterface, economyController economy.ControllerInterface) *FleetHandler {
	return &FleetHandler{
		catalog: catalogService,
		economy: economyController,
	}
}

// ListShips handles GET /api/v1/ships
func (h *FleetHandler) ListShips(w http.ResponseWriter, r *http.Request) {
	defs := h.catalog.All()
	ships := make([]response.Ship, len(defs))
	for i := range defs {
		ships[i] = response.ShipFromModel(&defs[i])
	}
	response.JSON(w, http.StatusOK, ships)
}

// GetShip handles GET /api/v1/ships/{name}
func (h *FleetHandler) GetShip(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	def, err := h.catalog.Lookup(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ShipFromModel(def))
}

// SelectStarter handles POST /api/v1/fleet/starter
func (h *FleetHandler) SelectStarter(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	var req request.SelectShipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Ship == "" {
		WriteError(w, NewInvalidRequestError("ship is required"))
		return
	}

	rec, err := h.economy.SelectStarter(r.Context(), id, req.Ship)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantFromModel(rec))
}

// SelectFlagship handles POST /api/v1/fleet/flagship
func (h *FleetHandler) SelectFlagship(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	var req request.SelectShipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Ship == "" {
		WriteError(w, NewInvalidRequestError("ship is required"))
		return
	}

	rec, err := h.economy.SelectFlagship(r.Context(), id, req.Ship)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantFromModel(rec))
}

// Purchase handles POST /api/v1/fleet/purchase
func (h *FleetHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetParticipant(r.Context())

	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Ship == "" {
		WriteError(w, NewInvalidRequestError("ship is required"))
		return
	}

	rec, err := h.economy.Purchase(r.Context(), id, req.Ship)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantFromModel(rec))
}
