package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/madellimac/hulotte/internal/platform"
	"github.com/madellimac/hulotte/internal/project"
)

// Result holds the outcome of writing a project.
type Result struct {
	OutputDir string
	Files     []string // generated files, relative to OutputDir
	Copied    []string // files copied from support trees, relative to OutputDir
	Warnings  []string
}

// Synthesize plans cfg and writes it into cfg.ProjectDir().
func Synthesize(ctx context.Context, cfg project.Configuration) (*Result, error) {
	set, err := Plan(cfg)
	if err != nil {
		return nil, err
	}
	return Write(ctx, cfg.ProjectDir(), set)
}

// Write puts set on disk under dir. Directories are created as needed and
// existing files are overwritten. Support trees are located before anything
// is written; a later failure leaves whatever was already written in place.
func Write(ctx context.Context, dir string, set *ArtifactSet) (*Result, error) {
	result := &Result{OutputDir: dir}

	trees := make([]fs.FS, len(set.Copies))
	for i, c := range set.Copies {
		fsys, err := c.open()
		if err != nil {
			return result, err
		}
		trees[i] = fsys
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, fmt.Errorf("creating project directory %s: %w", dir, err)
	}

	for _, d := range set.Dirs {
		p := filepath.Join(dir, filepath.FromSlash(d))
		if err := os.MkdirAll(p, 0755); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", p, err)
		}
	}

	for _, f := range set.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		p := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := platform.WriteFile(p, []byte(f.Content), f.Mode); err != nil {
			return result, fmt.Errorf("writing %s: %w", p, err)
		}
		result.Files = append(result.Files, f.Path)

		if strings.HasSuffix(f.Path, ".sh") {
			if err := CheckShell(f.Path, f.Content); err != nil {
				result.Warnings = append(result.Warnings, err.Error())
			}
		}
	}

	for i, c := range set.Copies {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		copied, err := CopyFS(trees[i], filepath.Join(dir, filepath.FromSlash(c.Path)))
		for _, rel := range copied {
			result.Copied = append(result.Copied, c.Path+"/"+rel)
		}
		if err != nil {
			return result, err
		}
	}

	return result, nil
}
