package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skyfleet/starhunt/internal/api/handler"
	"github.com/skyfleet/starhunt/internal/api/middleware"
	"github.com/skyfleet/starhunt/internal/api/ws"
	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/services/battle"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/services/economy"
	"github.com/skyfleet/starhunt/internal/services/spawner"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	CatalogService    catalog.ServiceInterface
	EconomyController economy.ControllerInterface
	BattleEngine      battle.EngineInterface
	SpawnerService    spawner.ServiceInterface
	Slot              *encounter.Slot
	Bus               *chat.Bus
	EventHub          *ws.Hub
	AdminTokenHash    string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	participantHandler := handler.NewParticipantHandler(cfg.EconomyController)
	fleetHandler := handler.NewFleetHandler(cfg.CatalogService, cfg.EconomyController)
	battleHandler := handler.NewBattleHandler(cfg.BattleEngine, cfg.Bus)
	encounterHandler := handler.NewEncounterHandler(cfg.Slot, cfg.EconomyController)
	adminHandler := handler.NewAdminHandler(cfg.SpawnerService)

	identityMiddleware := middleware.Identity()
	adminMiddleware := middleware.AdminAuth(cfg.AdminTokenHash)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Catalog routes (no identity required)
	api.HandleFunc("/ships", fleetHandler.ListShips).Methods(http.MethodGet)
	api.HandleFunc("/ships/{name}", fleetHandler.GetShip).Methods(http.MethodGet)

	// Encounter status is public
	api.HandleFunc("/encounter", encounterHandler.Get).Methods(http.MethodGet)

	// Participant routes
	participants := api.PathPrefix("/participants").Subrouter()
	participants.Use(identityMiddleware)
	participants.HandleFunc("", participantHandler.Register).Methods(http.MethodPost)
	participants.HandleFunc("/me", participantHandler.GetMe).Methods(http.MethodGet)
	participants.HandleFunc("/me/claim", participantHandler.Claim).Methods(http.MethodPost)

	// Fleet routes
	fleet := api.PathPrefix("/fleet").Subrouter()
	fleet.Use(identityMiddleware)
	fleet.HandleFunc("/starter", fleetHandler.SelectStarter).Methods(http.MethodPost)
	fleet.HandleFunc("/flagship", fleetHandler.SelectFlagship).Methods(http.MethodPost)
	fleet.HandleFunc("/purchase", fleetHandler.Purchase).Methods(http.MethodPost)

	// Battle routes
	battles := api.PathPrefix("/battles").Subrouter()
	battles.Use(identityMiddleware)
	battles.HandleFunc("", battleHandler.Engage).Methods(http.MethodPost)
	battles.HandleFunc("/directive", battleHandler.Directive).Methods(http.MethodPost)

	// Capture requires identity
	captures := api.PathPrefix("/encounter").Subrouter()
	captures.Use(identityMiddleware)
	captures.HandleFunc("/capture", encounterHandler.Capture).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/spawn", adminHandler.ForceSpawn).Methods(http.MethodPost)

	// Event feed (websocket upgrade; no identity, read-only)
	if cfg.EventHub != nil {
		api.Handle("/events", cfg.EventHub).Methods(http.MethodGet)
	}

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
