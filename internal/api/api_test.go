package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyfleet/starhunt/internal/api/response"
	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/dependencies/mocks"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/battle"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/services/economy"
	"github.com/skyfleet/starhunt/internal/services/ledger"
	"github.com/skyfleet/starhunt/internal/services/spawner"
	"github.com/skyfleet/starhunt/internal/storage/memory"
	"github.com/skyfleet/starhunt/internal/testutil"
)

const testAdminToken = "hunt-admin-token"

type discardNotifier struct{}

func (discardNotifier) Send(ctx context.Context, event model.RenderEvent) error { return nil }

type APISuite struct {
	suite.Suite
	server *httptest.Server
	slot   *encounter.Slot
	clock  *mocks.MockClock
	random *mocks.MockRandom
	bus    *chat.Bus
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	logger := testutil.NopLogger()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.slot = encounter.NewSlot()
	s.bus = chat.NewBus()

	catalogService := catalog.New(logger, nil)
	s.Require().NoError(catalogService.LoadShips([]model.ShipDefinition{
		{
			Name:     "Shuttle",
			Category: "civilian",
			Stats:    map[string]int{model.StatHP: 50},
			Weapons:  []model.Weapon{{Name: "Pea Shooter", Damage: 2}},
		},
		{
			Name:     "Corvette",
			Category: "escort",
			Stats:    map[string]int{model.StatHP: 100, model.StatPrice: 25000},
			Weapons:  []model.Weapon{{Name: "Railgun", Damage: 25}},
		},
	}))

	ledgerService := ledger.New(memory.New(), s.clock, logger)
	economyController := economy.NewController(
		ledgerService, catalogService, s.slot, s.clock, s.random, logger, economy.DefaultConfig())

	battleCfg := battle.DefaultConfig()
	battleCfg.ActionTimeout = 2 * time.Second
	engine := battle.NewEngine(
		ledgerService, catalogService, s.slot, s.bus, discardNotifier{},
		s.clock, s.random, logger, battleCfg)

	spawnerCfg := spawner.DefaultConfig()
	spawnerCfg.JitterMax = 0
	spawnerService := spawner.New(
		catalogService, s.slot, chat.NewStaticResolver([]model.ChannelID{"bridge"}),
		discardNotifier{}, s.clock, s.random, logger, spawnerCfg)

	tokenHash, err := bcrypt.GenerateFromPassword([]byte(testAdminToken), bcrypt.MinCost)
	s.Require().NoError(err)

	router := NewRouter(RouterConfig{
		Logger:            logger,
		CatalogService:    catalogService,
		EconomyController: economyController,
		BattleEngine:      engine,
		SpawnerService:    spawnerService,
		Slot:              s.slot,
		Bus:               s.bus,
		AdminTokenHash:    string(tokenHash),
	})

	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

func (s *APISuite) request(method, path, participant string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	if participant != "" {
		req.Header.Set("X-Participant-ID", participant)
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *APISuite) decode(resp *http.Response, out any) {
	defer func() { _ = resp.Body.Close() }()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *APISuite) errorCode(resp *http.Response) string {
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.decode(resp, &body)
	return body.Error.Code
}

func (s *APISuite) register(id string) {
	resp := s.request(http.MethodPost, "/api/v1/participants", id, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *APISuite) TestRegisterAndFetch() {
	resp := s.request(http.MethodPost, "/api/v1/participants", "user-1", nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var rec response.Participant
	s.decode(resp, &rec)
	s.Equal("user-1", rec.ID)
	s.Equal(30000, rec.Balance)

	resp = s.request(http.MethodGet, "/api/v1/participants/me", "user-1", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decode(resp, &rec)
	s.Equal("user-1", rec.ID)
}

func (s *APISuite) TestRegisterTwiceConflicts() {
	s.register("user-1")

	resp := s.request(http.MethodPost, "/api/v1/participants", "user-1", nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("ALREADY_REGISTERED", s.errorCode(resp))
}

func (s *APISuite) TestMissingIdentityHeaderRejected() {
	resp := s.request(http.MethodPost, "/api/v1/participants", "", nil)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(resp))
}

func (s *APISuite) TestStarterSelection() {
	s.register("user-1")

	resp := s.request(http.MethodPost, "/api/v1/fleet/starter", "user-1",
		map[string]string{"ship": "shuttle"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var rec response.Participant
	s.decode(resp, &rec)
	s.Equal([]string{"Shuttle"}, rec.Ships)
	s.Equal("Shuttle", rec.Flagship)
}

func (s *APISuite) TestStarterMustBeFree() {
	s.register("user-1")

	resp := s.request(http.MethodPost, "/api/v1/fleet/starter", "user-1",
		map[string]string{"ship": "Corvette"})
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("NOT_A_STARTER", s.errorCode(resp))
}

func (s *APISuite) TestPurchaseDebitsBalance() {
	s.register("user-1")

	resp := s.request(http.MethodPost, "/api/v1/fleet/purchase", "user-1",
		map[string]string{"ship": "Corvette"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var rec response.Participant
	s.decode(resp, &rec)
	s.Equal(5000, rec.Balance)
	s.Contains(rec.Ships, "Corvette")
}

func (s *APISuite) TestClaimGrantsCredits() {
	s.register("user-1")
	s.random.QueueBetween(1234)

	resp := s.request(http.MethodPost, "/api/v1/participants/me/claim", "user-1", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var claim response.ClaimResponse
	s.decode(resp, &claim)
	s.Equal(1234, claim.Amount)
	s.Equal(31234, claim.Participant.Balance)

	// Immediate second claim is on cooldown
	resp = s.request(http.MethodPost, "/api/v1/participants/me/claim", "user-1", nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("ON_COOLDOWN", s.errorCode(resp))
}

func (s *APISuite) TestEncounterEmptySlot() {
	resp := s.request(http.MethodGet, "/api/v1/encounter", "", nil)
	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NO_ENCOUNTER_ACTIVE", s.errorCode(resp))
}

func (s *APISuite) TestAdminSpawnRequiresToken() {
	resp := s.request(http.MethodPost, "/api/v1/admin/spawn", "", nil)
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *APISuite) TestAdminSpawnPublishesEncounter() {
	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/v1/admin/spawn", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.request(http.MethodGet, "/api/v1/encounter", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var enc response.Encounter
	s.decode(resp, &enc)
	s.Equal("bridge", enc.Channel)
	s.NotEmpty(enc.ID)
}

func (s *APISuite) TestCaptureMovesShipToRoster() {
	s.register("user-1")
	s.Require().NoError(s.slot.Publish(&model.Encounter{
		ID:      "enc-1",
		Channel: "bridge",
		Ship: model.ShipDefinition{
			Name:    "Marauder",
			Stats:   map[string]int{model.StatHP: 80},
			Weapons: []model.Weapon{{Name: "Laser", Damage: 10}},
		},
	}))

	resp := s.request(http.MethodPost, "/api/v1/encounter/capture", "user-1", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var capture response.CaptureResponse
	s.decode(resp, &capture)
	s.Equal("Marauder", capture.Encounter.Ship.Name)
	s.Contains(capture.Participant.Ships, "Marauder")
	s.False(s.slot.Occupied())
}

func (s *APISuite) TestEngageWithoutFlagshipConflicts() {
	s.register("user-1")

	resp := s.request(http.MethodPost, "/api/v1/battles", "user-1", nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("NO_SHIP_SELECTED", s.errorCode(resp))
}

// TestBattleOverDirectiveEndpoint runs a full battle through the HTTP
// surface: the engage request blocks while a flee directive arrives via
// the directive endpoint.
func (s *APISuite) TestBattleOverDirectiveEndpoint() {
	s.register("user-1")

	resp := s.request(http.MethodPost, "/api/v1/fleet/starter", "user-1",
		map[string]string{"ship": "Shuttle"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	s.Require().NoError(s.slot.Publish(&model.Encounter{
		ID:      "enc-1",
		Channel: "bridge",
		Ship: model.ShipDefinition{
			Name:    "Marauder",
			Stats:   map[string]int{model.StatHP: 80},
			Weapons: []model.Weapon{{Name: "Laser", Damage: 10}},
		},
	}))

	reportCh := make(chan response.BattleReport, 1)
	errCh := make(chan error, 1)
	go func() {
		resp := s.request(http.MethodPost, "/api/v1/battles", "user-1", nil)
		if resp.StatusCode != http.StatusOK {
			errCh <- fmt.Errorf("engage returned status %d", resp.StatusCode)
			return
		}
		var report response.BattleReport
		defer func() { _ = resp.Body.Close() }()
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			errCh <- err
			return
		}
		reportCh <- report
	}()

	// Submit flee until the engine is awaiting the directive
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp := s.request(http.MethodPost, "/api/v1/battles/directive", "user-1",
			map[string]string{"text": "flee"})
		var ack response.DirectiveResponse
		s.decode(resp, &ack)
		if ack.Accepted {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case report := <-reportCh:
		s.Equal("fled", report.Outcome)
		s.True(s.slot.Occupied(), "fleeing leaves the encounter active")
	case err := <-errCh:
		s.Require().NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("battle never concluded")
	}
}
