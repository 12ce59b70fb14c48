package icon

import (
	"io"
	"os"
	"path/filepath"
)

// sizeBucket estimates a theme size directory for a bitmap icon from its
// file size.
func sizeBucket(size int64) string {
	switch {
	case size < 5000:
		return "16x16"
	case size < 15000:
		return "32x32"
	case size < 50000:
		return "48x48"
	case size < 100000:
		return "64x64"
	default:
		return "128x128"
	}
}

// cachePath returns the theme-cache destination for a candidate: SVGs go
// under scalable/apps, bitmaps under their size bucket. The extension is
// stripped so desktop environments can resolve the identifier regardless
// of format. Same-stem candidates landing in one bucket overwrite each
// other; last processed wins.
func cachePath(themeDir string, c Candidate) string {
	var sub string
	if c.Format == "svg" {
		sub = filepath.Join("scalable", "apps")
	} else {
		sub = filepath.Join(sizeBucket(c.Size), "apps")
	}
	return filepath.Join(themeDir, sub, c.Stem())
}

// cache copies a candidate into the theme cache, creating directories on
// demand, and returns the destination path.
func cache(themeDir string, c Candidate) (string, error) {
	dest := cachePath(themeDir, c)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := copyFile(c.Path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
