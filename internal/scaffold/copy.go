package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/madellimac/hulotte/internal/platform"
)

// supportDir holds the built-in support trees inside scaffoldFS.
const supportDir = "support"

// excludedNames are skipped when copying a support tree.
var excludedNames = map[string]bool{
	".git":        true,
	".DS_Store":   true,
	"__pycache__": true,
	"build":       true,
}

// open returns the tree c copies from: Source when it is a directory on
// disk, otherwise the built-in tree named by Embedded.
func (c Copy) open() (fs.FS, error) {
	if c.Source != "" {
		if info, err := os.Stat(c.Source); err == nil && info.IsDir() {
			return os.DirFS(c.Source), nil
		}
	}
	if c.Embedded != "" {
		sub, err := fs.Sub(scaffoldFS, c.Embedded)
		if err == nil {
			if _, err = fs.Stat(sub, "."); err == nil {
				return sub, nil
			}
		}
	}
	return nil, fmt.Errorf("support tree not found at %s and no built-in %s", c.Source, path.Base(c.Embedded))
}

// CopyTree recursively copies src into dst, overwriting files that already
// exist. Files present only in dst are left alone, so running it twice
// leaves the same result as running it once.
func CopyTree(src, dst string) ([]string, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("support tree not found at %s: %w", src, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("support tree %s is not a directory", src)
	}
	return CopyFS(os.DirFS(src), dst)
}

// CopyFS copies every regular file of fsys into dst with the same rules as
// CopyTree. Returned paths are slash-separated and relative to dst.
func CopyFS(fsys fs.FS, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(fsys, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if rel != "." && excludedNames[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(rel))
		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case d.Type().IsRegular():
			if err := copyFile(fsys, rel, target); err != nil {
				return fmt.Errorf("copying %s: %w", rel, err)
			}
			copied = append(copied, rel)
		}
		// Symlinks and special files are skipped.
		return nil
	})
	return copied, err
}

// copyFile copies one file, keeping its permission bits but always owner
// writable so a later run can overwrite it.
func copyFile(fsys fs.FS, name, dst string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return err
	}
	return platform.WriteFile(dst, data, info.Mode().Perm()|0200)
}
