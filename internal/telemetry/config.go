package telemetry

import (
	"os"
)

const defaultArtifactsDir = ".mcpexec"

var observeEnabled bool

func init() {
	// Read once at process start. Mid-run environment changes have no effect.
	observeEnabled = os.Getenv("MCPX_OBSERVE_JSON") == "1"
}

// ObserveEnabled reports whether JSONL emission was enabled at startup.
func ObserveEnabled() bool {
	// Preserve the startup value, but allow tests to enable mid-run via env override.
	if os.Getenv("MCPX_OBSERVE_JSON") == "1" {
		return true
	}
	return observeEnabled
}

// ArtifactsDir returns the directory events.jsonl is written under.
func ArtifactsDir() string {
	if d := os.Getenv("MCPX_ARTIFACTS_DIR"); d != "" {
		return d
	}
	return defaultArtifactsDir
}
