package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Render tool defaults.
	Lang          string
	CollapseAfter int

	// Input bounds.
	MaxFileSize   int64
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from POSTMAN2HTML_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Lang:          os.Getenv("POSTMAN2HTML_LANG"),
		CollapseAfter: envInt("POSTMAN2HTML_COLLAPSE_AFTER", 0),
		MaxFileSize:   envInt64("POSTMAN2HTML_MAX_FILE_SIZE", 10*1024*1024),
		MaxInlineSize: envInt64("POSTMAN2HTML_MAX_INLINE_SIZE", 1024*1024),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
