// Package bundle identifies and discovers AppImage bundles on disk.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Suffix is the recognized bundle extension. Matching is case-sensitive,
// mirroring how AppImages are conventionally named.
const Suffix = ".AppImage"

// Bundle is a single discovered AppImage.
type Bundle struct {
	// Path is the absolute or caller-relative location of the bundle file.
	Path string
}

// Name returns the application name: the bundle filename with its extension
// stripped.
func (b Bundle) Name() string {
	base := filepath.Base(b.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Is reports whether path names a bundle.
func Is(path string) bool {
	return strings.HasSuffix(path, Suffix)
}

// Scan returns the bundles directly inside dir, in filename order.
// Subdirectories are not descended into.
func Scan(dir string) ([]Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read bundle dir: %w", err)
	}

	var bundles []Bundle
	for _, e := range entries {
		if e.IsDir() || !Is(e.Name()) {
			continue
		}
		bundles = append(bundles, Bundle{Path: filepath.Join(dir, e.Name())})
	}
	return bundles, nil
}
