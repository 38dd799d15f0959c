package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultName is the catalog shipped with the binary.
const DefaultName = "default.yaml"

//go:embed *.yaml
var CatalogsFS embed.FS

// Read returns the file at path, falling back to the embedded catalog with
// the same base name when it is not on disk.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return CatalogsFS.ReadFile(filepath.Base(path))
}

// Load reads and parses a catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		path = DefaultName
	}
	data, err := Read(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return c, nil
}

func ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
