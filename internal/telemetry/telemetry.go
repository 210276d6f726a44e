package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// eventsFile is the JSONL sink under ArtifactsDir.
const eventsFile = "events.jsonl"

// Tool calls on a shared session may emit concurrently; one line per append.
var appendMu sync.Mutex

// Emit appends one JSON line to <ArtifactsDir>/events.jsonl when
// MCPX_OBSERVE_JSON=1. The line carries fields plus "time" (RFC3339Nano, UTC)
// and "event"; the caller's map is not modified. Failures go to stderr and
// never reach the caller.
func Emit(name string, fields map[string]any) {
	if !ObserveEnabled() {
		return
	}
	line := make(map[string]any, len(fields)+2)
	maps.Copy(line, fields)
	line["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	line["event"] = name

	if err := appendLine(ArtifactsDir(), line); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
	}
}

func appendLine(dir string, line map[string]any) error {
	b, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal %v: %w", line["event"], err)
	}

	appendMu.Lock()
	defer appendMu.Unlock()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, eventsFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.Write(append(b, '\n'))
	return errors.Join(werr, f.Close())
}
