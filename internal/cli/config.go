package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL       string
	Participant     string
	ParticipantFile string
	AdminToken      string
	Output          string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:       getEnvOrDefault("HUNTCTL_SERVER", "http://localhost:8080"),
		Participant:     os.Getenv("HUNTCTL_PARTICIPANT"),
		ParticipantFile: getEnvOrDefault("HUNTCTL_PARTICIPANT_FILE", defaultParticipantFile()),
		AdminToken:      os.Getenv("HUNTCTL_ADMIN_TOKEN"),
		Output:          "text",
	}
}

// LoadParticipant loads the participant id from file if not already set
func (c *Config) LoadParticipant() error {
	if c.Participant != "" {
		return nil
	}

	data, err := os.ReadFile(c.ParticipantFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No participant file is fine
		}
		return err
	}

	c.Participant = strings.TrimSpace(string(data))
	return nil
}

// SaveParticipant saves the participant id to the participant file
func (c *Config) SaveParticipant(id string) error {
	c.Participant = id

	dir := filepath.Dir(c.ParticipantFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.ParticipantFile, []byte(id), 0600)
}

func defaultParticipantFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".starhunt/participant"
	}
	return filepath.Join(home, ".starhunt", "participant")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
