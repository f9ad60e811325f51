package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one encoded frame in the output manifest.
type ManifestEntry struct {
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	Section int     `json:"section"`
	Scroll  float64 `json:"scroll"`
	Image   string  `json:"image"`
}

// WriteManifest writes the successful results, in frame order, as JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:   r.Index,
			Time:    r.Time,
			Section: r.Section,
			Scroll:  r.ScrollY,
			Image:   r.Image,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
