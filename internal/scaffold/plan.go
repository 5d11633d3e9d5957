package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sync"

	"github.com/madellimac/hulotte/internal/manifest"
	"github.com/madellimac/hulotte/internal/project"
)

// Artifact is one generated file, Path relative to the project directory.
type Artifact struct {
	ID      string
	Path    string
	Content string
	Mode    fs.FileMode
}

// Copy is a directory tree copied into the project. Source on disk wins
// over the built-in tree when it exists.
type Copy struct {
	ID       string
	Source   string // absolute, under the tool root
	Embedded string // built-in fallback inside the binary
	Path     string // relative to the project directory
}

// ArtifactSet is everything a project consists of, in emission order.
type ArtifactSet struct {
	Dirs   []string
	Files  []Artifact
	Copies []Copy
}

// Find returns the artifact with the given relative path.
func (s *ArtifactSet) Find(rel string) (Artifact, bool) {
	for _, f := range s.Files {
		if f.Path == rel {
			return f, true
		}
	}
	return Artifact{}, false
}

var (
	catalogueOnce sync.Once
	catalogue     *manifest.Catalogue
	catalogueErr  error
)

// Catalogue returns the embedded artifact catalogue, parsed and validated once.
func Catalogue() (*manifest.Catalogue, error) {
	catalogueOnce.Do(func() {
		data, err := fs.ReadFile(scaffoldFS, "artifacts.yaml")
		if err != nil {
			catalogueErr = fmt.Errorf("reading embedded catalogue: %w", err)
			return
		}
		catalogue, catalogueErr = manifest.Parse(data)
	})
	return catalogue, catalogueErr
}

// Features maps cfg's toggles to catalogue feature names.
func Features(cfg project.Configuration) map[string]bool {
	return map[string]bool{
		manifest.FeatureAFF3CT:   cfg.UseAFF3CT,
		manifest.FeatureCustom:   cfg.UseCustom,
		manifest.FeatureHardware: cfg.UseHardware,
	}
}

// Plan renders every artifact cfg enables. The result depends on cfg alone.
func Plan(cfg project.Configuration) (*ArtifactSet, error) {
	cat, err := Catalogue()
	if err != nil {
		return nil, err
	}

	data := NewTemplateContext(cfg)
	features := Features(cfg)

	set := &ArtifactSet{}
	seenDir := map[string]bool{}
	addDir := func(dir string) {
		if dir == "." || seenDir[dir] {
			return
		}
		seenDir[dir] = true
		set.Dirs = append(set.Dirs, dir)
	}
	addDir("src")

	for _, entry := range cat.Artifacts {
		if !entry.Enabled(features) {
			continue
		}

		if entry.IsCopy() {
			c := Copy{
				ID:       entry.ID,
				Embedded: path.Join(supportDir, entry.Copy),
				Path:     entry.Path,
			}
			if cfg.ToolRoot != "" {
				c.Source = filepath.Join(cfg.ToolRoot, filepath.FromSlash(entry.Copy))
			}
			set.Copies = append(set.Copies, c)
			continue
		}

		content, err := Render(entry.Template, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", entry.Path, err)
		}

		mode := fs.FileMode(0644)
		if entry.Executable {
			mode = 0755
		}

		addDir(path.Dir(entry.Path))
		set.Files = append(set.Files, Artifact{
			ID:      entry.ID,
			Path:    entry.Path,
			Content: content,
			Mode:    mode,
		})
	}

	return set, nil
}
