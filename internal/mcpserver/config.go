package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds configurable MCP server defaults, loaded once at
// startup from XFORM_* environment variables.
type serverConfig struct {
	// AtomicDefault is the atomic flag assumed for apply_transform when
	// the submitted plan omits it.
	AtomicDefault bool

	// MaxDiagnostics caps how many plan-validation violations validate_plan
	// returns in a single tool result.
	MaxDiagnostics int
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		AtomicDefault:  envBool("XFORM_ATOMIC_DEFAULT", true),
		MaxDiagnostics: envInt("XFORM_MAX_DIAGNOSTICS", 50),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
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
