package acquire

import (
	"os"
	"path/filepath"
	"sort"
)

// FindLibrary locates a built archive under root. The canonical path wins;
// otherwise the glob matches are sorted lexicographically and the first is
// returned, with ambiguous set when there was more than one.
func FindLibrary(root, canonical, glob string) (path string, ambiguous bool, err error) {
	p := filepath.Join(root, canonical)
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return p, false, nil
	}

	matches, err := filepath.Glob(filepath.Join(root, glob))
	if err != nil {
		return "", false, err
	}
	if len(matches) == 0 {
		return "", false, ErrNoArtifact
	}
	sort.Strings(matches)
	return matches[0], len(matches) > 1, nil
}

// fileExists reports whether path is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
