package listing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

// Snapshot is a saved tools/list result.
type Snapshot struct {
	Server    string                `json:"server"`
	FetchedAt time.Time             `json:"fetched_at"`
	Tools     []toolspec.Descriptor `json:"tools"`
}

// Load reads a snapshot written by Save.
func Load(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("listing: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, replacing any previous snapshot.
func Save(path string, s Snapshot) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
