package grid

import (
	"os"
	"strconv"
)

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// SerialEnv reports whether parallel dispatch is disabled via the
// DOTGRID_SERIAL environment variable ("1" or "true").
func SerialEnv() bool {
	switch os.Getenv("DOTGRID_SERIAL") {
	case "1", "true", "TRUE":
		return true
	}
	return false
}

// WorkersEnv returns the worker-count override from DOTGRID_WORKERS,
// or 0 if unset or invalid.
func WorkersEnv() int {
	w := envInt("DOTGRID_WORKERS", 0)
	if w < 0 {
		return 0
	}
	return w
}
