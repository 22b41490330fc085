package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/testutil"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d clients", want)
}

func TestHubBroadcastsEventsToClient(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	event := model.RenderEvent{
		Kind:    model.EventEncounterSpawned,
		Channel: "bridge",
		Title:   "Hostile Corvette sighted!",
	}
	require.NoError(t, hub.Send(context.Background(), event))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got model.RenderEvent
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, event.Kind, got.Kind)
	assert.Equal(t, event.Channel, got.Channel)
	assert.Equal(t, event.Title, got.Title)
}

func TestHubDeliversToEveryClient(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Stop()

	first := dialHub(t, hub)
	second := dialHub(t, hub)
	waitForClients(t, hub, 2)

	require.NoError(t, hub.Send(context.Background(), model.RenderEvent{Kind: model.EventBattleRound}))

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var got model.RenderEvent
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, model.EventBattleRound, got.Kind)
	}
}

func TestHubTracksDisconnects(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Stop()

	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}

func TestHubSendAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		_ = hub.Send(context.Background(), model.RenderEvent{Kind: model.EventBattlePrompt})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("send blocked after hub stop")
	}
}
