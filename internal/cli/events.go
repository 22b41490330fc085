package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream render events over websocket",
		Long: `Connect to the event feed and stream render events in real-time.

Events include:
  - encounter_spawned: A hostile ship appeared
  - battle_prompt: A battle is awaiting an action
  - battle_round: A round resolved
  - battle_outcome: A battle concluded

Press Ctrl+C to disconnect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return streamEvents(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")

	return cmd
}

// renderEvent mirrors the server's event shape
type renderEvent struct {
	Kind        string `json:"kind"`
	Channel     string `json:"channel,omitempty"`
	Participant string `json:"participant,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Fields      []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"fields,omitempty"`
}

func streamEvents(jsonOutput bool) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + "/api/v1/events"
	url = strings.Replace(url, "http", "ws", 1)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = conn.Close() }()

	fmt.Fprintf(os.Stderr, "Connected to %s (Ctrl+C to disconnect)\n", url)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("connection closed: %w", err)
		}

		if jsonOutput {
			fmt.Println(string(data))
			continue
		}

		var event renderEvent
		if err := json.Unmarshal(data, &event); err != nil {
			fmt.Println(string(data))
			continue
		}
		printEvent(event)
	}
}

func printEvent(event renderEvent) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] %s: %s\n", timestamp, event.Kind, event.Title)
	if event.Description != "" {
		fmt.Printf("    %s\n", event.Description)
	}
	for _, field := range event.Fields {
		fmt.Printf("    %s: %s\n", field.Name, field.Value)
	}
}
