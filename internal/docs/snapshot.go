package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"docnav/internal/config"
)

// Snapshots store the raw fetched dataset for one version, not the resolved
// tree: resolution always re-runs, so identity and ownership invariants hold
// regardless of where the inputs came from.

func snapshotPath(version string) string {
	return filepath.Join(config.SnapshotDir(), version+".json.zst")
}

// SaveSnapshot compresses and writes a raw dataset to the snapshot dir.
func SaveSnapshot(raw *RawDataset) error {
	dir := config.SnapshotDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	f, err := os.Create(snapshotPath(raw.Version))
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	w, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	if err := json.NewEncoder(w).Encode(raw); err != nil {
		w.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return nil
}

// LoadSnapshot reads and decompresses a raw dataset from the snapshot dir.
func LoadSnapshot(version string) (*RawDataset, error) {
	f, err := os.Open(snapshotPath(version))
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer r.Close()

	var raw RawDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &raw, nil
}

// HasSnapshot checks whether a snapshot exists for version.
func HasSnapshot(version string) bool {
	_, err := os.Stat(snapshotPath(version))
	return err == nil
}
