package cli

import (
	"fmt"
	"os"
	"time"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Timeout   time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("REBIRTH_SERVER", "http://localhost:8080"),
		Output:    OutputText,
		Timeout:   10 * time.Second,
	}
}

// Validate checks the flag values
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid --output %q: must be text or json", c.Output)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("--server is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
