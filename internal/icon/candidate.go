// Package icon extracts, scores, and caches application icons from
// self-extracting bundles.
package icon

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Candidate is an icon file discovered inside an extracted bundle.
type Candidate struct {
	Path string
	// Format is the lower-cased extension without the dot: "svg", "png",
	// "xpm" or "ico".
	Format string
	Size   int64
}

// Stem returns the filename without its extension; it doubles as the icon
// identifier under the theme cache.
func (c Candidate) Stem() string {
	base := filepath.Base(c.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var iconExts = map[string]bool{
	".svg": true,
	".png": true,
	".xpm": true,
	".ico": true,
}

// enumerate walks root and collects every regular file with a recognized
// icon extension. Unreadable subtrees are skipped, not fatal. WalkDir is
// lexical per directory, so traversal order is deterministic.
func enumerate(root string) []Candidate {
	var found []Candidate
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !iconExts[ext] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		found = append(found, Candidate{
			Path:   path,
			Format: ext[1:],
			Size:   info.Size(),
		})
		return nil
	})
	return found
}
