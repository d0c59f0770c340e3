package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	DataDir   string
	RedisURL  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("RPSDUEL_SERVER", "http://localhost:8080"),
		DataDir:   getEnvOrDefault("RPSDUEL_DATA_DIR", defaultDataDir()),
		RedisURL:  os.Getenv("RPSDUEL_REDIS_URL"),
		Output:    "text",
		Verbose:   false,
	}
}

// StatePath is where the file-backed store keeps local state
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "state.json")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rpsduel"
	}
	return filepath.Join(home, ".rpsduel")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
