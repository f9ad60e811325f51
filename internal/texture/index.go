package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase asset keys ("textures/gradients/3") to filesystem paths.
// Lossless formats take priority over JPEG for the same key.
type Index struct {
	root    string
	entries map[string]string // key → full path
}

var extRank = map[string]int{
	".png":  3,
	".tga":  3,
	".bmp":  3,
	".tif":  2,
	".tiff": 2,
	".webp": 2,
	".gif":  1,
	".jpg":  0,
	".jpeg": 0,
}

// BuildIndex scans assetDir recursively for image files.
func BuildIndex(assetDir string) *Index {
	idx := &Index{root: assetDir, entries: make(map[string]string)}
	if assetDir == "" {
		return idx
	}

	filepath.WalkDir(assetDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := extRank[ext]
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(assetDir, path)
		if err != nil {
			return nil
		}
		key := keyOf(rel)

		existing, exists := idx.entries[key]
		if !exists || rank > extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[key] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for an asset name, or ("", false).
// Names may be URL-like ("/textures/gradients/3.jpg"), carry another
// extension, or omit leading directories ("gradients/3").
func (idx *Index) ResolvePath(name string) (string, bool) {
	key := keyOf(name)
	if path, ok := idx.entries[key]; ok {
		return path, true
	}
	// Suffix match on whole path segments.
	var best string
	for k, path := range idx.entries {
		if strings.HasSuffix(k, "/"+key) && (best == "" || path < best) {
			best = path
		}
	}
	return best, best != ""
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func keyOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+name)), "/")
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(name)
}
