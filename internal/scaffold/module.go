package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/madellimac/hulotte/internal/platform"
	"github.com/madellimac/hulotte/internal/project"
)

var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	projectLineRe = regexp.MustCompile(`(?m)^project\(([A-Za-z0-9_-]+)`)
)

// ModuleResult describes a custom stage added to an existing project.
type ModuleResult struct {
	ProjectName string
	ModuleName  string
	ModuleVar   string
	Files       []string // relative to the project directory
	CMakeFile   string   // CMakeLists.txt, now compiling the new source
}

// ProjectName reads the project name from the project(...) line of the
// CMakeLists.txt in dir.
func ProjectName(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "CMakeLists.txt"))
	if err != nil {
		return "", fmt.Errorf("not a Hulotte project (no CMakeLists.txt in %s): %w", dir, err)
	}
	m := projectLineRe.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("could not determine project name from %s", filepath.Join(dir, "CMakeLists.txt"))
	}
	return string(m[1]), nil
}

// AddModule generates src/custom/<moduleName>.{hpp,cpp} in an existing
// project and adds the source to the project's custom library, creating the
// library when the project was generated without one. Existing module files
// are never overwritten.
func AddModule(ctx context.Context, dir, moduleName string) (*ModuleResult, error) {
	if !identRe.MatchString(moduleName) {
		return nil, &project.ValidationError{
			Field:  "module name",
			Value:  moduleName,
			Reason: "must be a C++ identifier (letters, digits, underscores; not starting with a digit)",
		}
	}

	name, err := ProjectName(dir)
	if err != nil {
		return nil, err
	}

	res := &ModuleResult{
		ProjectName: name,
		ModuleName:  moduleName,
		ModuleVar:   SnakeCase(moduleName),
		CMakeFile:   "CMakeLists.txt",
	}

	header := "src/custom/" + moduleName + ".hpp"
	source := "src/custom/" + moduleName + ".cpp"
	for _, rel := range []string{header, source} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err == nil {
			return nil, fmt.Errorf("module %s already exists (%s)", moduleName, rel)
		}
	}

	data := TemplateContext{ProjectName: name, ModuleName: moduleName, ModuleVar: res.ModuleVar, UseCustom: true}
	set := &ArtifactSet{Dirs: []string{"src/custom"}}
	for _, a := range []struct{ path, tmpl string }{
		{header, "custom/module.hpp.tmpl"},
		{source, "custom/module.cpp.tmpl"},
	} {
		content, err := Render(a.tmpl, data)
		if err != nil {
			return nil, err
		}
		set.Files = append(set.Files, Artifact{Path: a.path, Content: content, Mode: 0644})
	}

	written, err := Write(ctx, dir, set)
	if err != nil {
		return nil, err
	}
	res.Files = written.Files

	if err := addToCustomLibrary(filepath.Join(dir, "CMakeLists.txt"), name, source); err != nil {
		return res, err
	}
	return res, nil
}

// addToCustomLibrary lists source in the <name>_custom library.
func addToCustomLibrary(cmakePath, name, source string) error {
	data, err := os.ReadFile(cmakePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmakePath, err)
	}
	text := string(data)
	entry := "    " + source + "\n"

	lib := "add_library(" + name + "_custom STATIC\n"
	if i := strings.Index(text, lib); i >= 0 {
		at := i + len(lib)
		text = text[:at] + entry + text[at:]
	} else {
		exe := "add_executable(" + name
		j := strings.Index(text, exe)
		if j < 0 {
			return fmt.Errorf("%s has no add_executable(%s ...); add %s by hand", cmakePath, name, source)
		}
		block := lib + entry + ")\n" +
			"target_include_directories(" + name + "_custom PUBLIC src)\n" +
			"target_link_libraries(" + name + "_custom PUBLIC ${HULOTTE_LIBS})\n\n"
		text = text[:j] + block + text[j:]
		text = strings.Replace(text,
			"target_link_libraries("+name+" ${HULOTTE_LIBS})",
			"target_link_libraries("+name+" "+name+"_custom)", 1)
	}

	return platform.WriteFile(cmakePath, []byte(text), 0644)
}

// BindingHint returns the main.cpp lines that place the module after prev
// and before the finalizer.
func (r *ModuleResult) BindingHint(prev string) []string {
	return []string{
		fmt.Sprintf(`#include "custom/%s.hpp"`, r.ModuleName),
		fmt.Sprintf(`module::%s %s(n_elmts);`, r.ModuleName, r.ModuleVar),
		fmt.Sprintf(`%s["process::out"] = %s["process::in"];`, prev, r.ModuleVar),
		fmt.Sprintf(`%s["process::out"] = finalizer["finalize::in"];`, r.ModuleVar),
	}
}
