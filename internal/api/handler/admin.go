package handler

import (
	"net/http"

	"github.com/skyfleet/starhunt/internal/api/response"
	"github.com/skyfleet/starhunt/internal/services/spawner"
)

// AdminHandler handles operator-only endpoints
type AdminHandler struct {
	spawner spawner.ServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(spawnerService spawner.ServiceInterface) *AdminHandler {
	return &AdminHandler{
		spawner: spawnerService,
	}
}

// ForceSpawn handles POST /api/v1/admin/spawn. Runs one spawn pass
// immediately, subject to the same single-encounter rule as the
// scheduler.
func (h *AdminHandler) ForceSpawn(w http.ResponseWriter, r *http.Request) {
	h.spawner.SpawnTick(r.Context())
	response.NoContent(w)
}
