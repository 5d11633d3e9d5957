package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madellimac/hulotte/internal/project"
)

func testConfig(t *testing.T, aff3ct, custom, hardware bool) project.Configuration {
	t.Helper()
	return project.Configuration{
		Name:         "demo",
		OutputDir:    t.TempDir(),
		StreamPURoot: "/opt/hulotte/lib/streampu",
		AFF3CTRoot:   aff3ctRoot(aff3ct),
		ToolRoot:     "/opt/hulotte",
		UseAFF3CT:    aff3ct,
		UseCustom:    custom,
		UseHardware:  hardware,
	}
}

func aff3ctRoot(on bool) string {
	if on {
		return "/opt/hulotte/lib/aff3ct"
	}
	return ""
}

func paths(set *ArtifactSet) []string {
	var out []string
	for _, f := range set.Files {
		out = append(out, f.Path)
	}
	return out
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"MyModule", "my_module"},
		{"FIRFilter", "fir_filter"},
		{"Gain", "gain"},
		{"Stage2Out", "stage2_out"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SnakeCase(tt.in); got != tt.want {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("nope.tmpl", TemplateContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.tmpl")
}

func TestCatalogueIsValid(t *testing.T) {
	cat, err := Catalogue()
	require.NoError(t, err)
	assert.Equal(t, "cmakelists", cat.Artifacts[0].ID)
	assert.Equal(t, "main", cat.Artifacts[1].ID)
}

func TestPlanIsDeterministic(t *testing.T) {
	cfg := testConfig(t, true, true, true)

	a, err := Plan(cfg)
	require.NoError(t, err)
	b, err := Plan(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPlanFeatureCombinations(t *testing.T) {
	for _, aff3ct := range []bool{false, true} {
		for _, custom := range []bool{false, true} {
			for _, hardware := range []bool{false, true} {
				name := fmt.Sprintf("aff3ct=%v/custom=%v/hardware=%v", aff3ct, custom, hardware)
				t.Run(name, func(t *testing.T) {
					cfg := testConfig(t, aff3ct, custom, hardware)
					set, err := Plan(cfg)
					require.NoError(t, err)

					files := paths(set)
					assert.Equal(t, "CMakeLists.txt", files[0])
					assert.Equal(t, "src/main.cpp", files[1])
					assert.Equal(t, "src", set.Dirs[0])

					cmake, _ := set.Find("CMakeLists.txt")
					main, _ := set.Find("src/main.cpp")
					readme, ok := set.Find("README.md")
					require.True(t, ok)

					assert.Contains(t, cmake.Content, "project(demo LANGUAGES CXX)")
					assert.Contains(t, cmake.Content, "set(CMAKE_CXX_STANDARD 17)")
					assert.Contains(t, cmake.Content, `set(STREAMPU_ROOT "/opt/hulotte/lib/streampu"`)
					assert.Contains(t, cmake.Content, `set(HULOTTE_ROOT "/opt/hulotte"`)
					assert.Contains(t, cmake.Content, "FATAL_ERROR")
					assert.Contains(t, cmake.Content, "-DHULOTTE_USE_STREAMPU")

					// Second library.
					assert.Equal(t, aff3ct, strings.Contains(cmake.Content, "AFF3CT_ROOT \""))
					assert.Equal(t, aff3ct, strings.Contains(cmake.Content, "-DHULOTTE_USE_AFF3CT"))
					assert.Equal(t, aff3ct, strings.Contains(main.Content, "#include <aff3ct.hpp>"))

					// Custom stage.
					_, hasHeader := set.Find("src/custom/MyModule.hpp")
					_, hasSource := set.Find("src/custom/MyModule.cpp")
					assert.Equal(t, custom, hasHeader)
					assert.Equal(t, custom, hasSource)
					if custom {
						assert.Equal(t, 1, strings.Count(cmake.Content, "src/custom/MyModule.cpp"))
						assert.Equal(t, 1, strings.Count(main.Content, `#include "custom/MyModule.hpp"`))
						assert.Equal(t, 1, strings.Count(main.Content, "module::MyModule my_module(n_elmts);"))
						assert.Contains(t, cmake.Content, "target_link_libraries(demo demo_custom)")
					} else {
						assert.NotContains(t, cmake.Content, "MyModule")
						assert.NotContains(t, main.Content, "MyModule")
						assert.NotContains(t, cmake.Content, "demo_custom")
					}

					// Hardware simulation.
					_, hasTop := set.Find("hw/universal_simulation_top.sv")
					_, hasWaves := set.Find("view_waves.sh")
					assert.Equal(t, hardware, hasTop)
					assert.Equal(t, hardware, hasWaves)
					assert.Equal(t, hardware, strings.Contains(cmake.Content, "find_package(verilator"))
					assert.Equal(t, hardware, strings.Contains(cmake.Content, "TOP_MODULE universal_simulation_top"))
					assert.Equal(t, hardware, strings.Contains(cmake.Content, "src/hw/HardwareSimulation.cpp"))
					assert.Equal(t, hardware, strings.Contains(main.Content, `#include "hw/HardwareSimulation.hpp"`))
					if hardware {
						require.Len(t, set.Copies, 1)
						assert.Equal(t, "common", set.Copies[0].Path)
						assert.Equal(t, filepath.Join("/opt/hulotte", "Common"), set.Copies[0].Source)
						assert.Equal(t, "support/Common", set.Copies[0].Embedded)
					} else {
						assert.Empty(t, set.Copies)
					}

					summary := fmt.Sprintf("custom module: %s, second library: %s, hardware: %s",
						onOff(custom), onOff(aff3ct), onOff(hardware))
					assert.Contains(t, readme.Content, summary)

					for _, f := range set.Files {
						if strings.HasSuffix(f.Path, ".sh") {
							assert.NoError(t, CheckShell(f.Path, f.Content))
						}
					}
				})
			}
		}
	}
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func TestPlanWiring(t *testing.T) {
	t.Run("custom stage sits between incrementer and finalizer", func(t *testing.T) {
		set, err := Plan(testConfig(t, false, true, false))
		require.NoError(t, err)
		main, _ := set.Find("src/main.cpp")

		assert.Contains(t, main.Content, `initializer["initialize::out"] = incrementer["increment::in"];`)
		assert.Contains(t, main.Content, `incrementer["increment::out"] = my_module["process::in"];`)
		assert.Contains(t, main.Content, `my_module["process::out"] = finalizer["finalize::in"];`)
		assert.NotContains(t, main.Content, `incrementer["increment::out"] = finalizer["finalize::in"];`)
	})

	t.Run("incrementer feeds finalizer without a custom stage", func(t *testing.T) {
		set, err := Plan(testConfig(t, false, false, true))
		require.NoError(t, err)
		main, _ := set.Find("src/main.cpp")

		assert.Contains(t, main.Content, `incrementer["increment::out"] = finalizer["finalize::in"];`)
		// The hardware wrapper is built but not bound.
		assert.Contains(t, main.Content, "module::HardwareSimulation hw_sim(n_elmts);")
		assert.NotContains(t, main.Content, `hw_sim["`)
	})
}

func TestPlanModes(t *testing.T) {
	set, err := Plan(testConfig(t, false, true, true))
	require.NoError(t, err)

	for _, f := range set.Files {
		want := os.FileMode(0644)
		if strings.HasSuffix(f.Path, ".sh") {
			want = 0755
		}
		assert.Equal(t, want, f.Mode, f.Path)
	}
}

func TestPlanDefaultProject(t *testing.T) {
	// create my_proj with every other question left at its default.
	cfg := testConfig(t, false, true, false)
	cfg.Name = "my_proj"

	set, err := Plan(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CMakeLists.txt",
		"src/main.cpp",
		"src/custom/MyModule.hpp",
		"src/custom/MyModule.cpp",
		".gitignore",
		"build.sh",
		"README.md",
	}, paths(set))
	assert.Equal(t, []string{"src", "src/custom"}, set.Dirs)
}

func writeCommon(t *testing.T, toolRoot string) {
	t.Helper()
	files := map[string]string{
		"Common/streampu/hw/Verilator_sim.hpp": "#pragma once\n",
		"Common/streampu/sw/Source.hpp":        "#pragma once\n",
		"Common/.git/HEAD":                     "ref: refs/heads/main\n",
		"Common/build/junk.o":                  "x",
	}
	for rel, content := range files {
		p := filepath.Join(toolRoot, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func TestSynthesize(t *testing.T) {
	cfg := testConfig(t, true, true, true)
	cfg.ToolRoot = t.TempDir()
	writeCommon(t, cfg.ToolRoot)

	res, err := Synthesize(context.Background(), cfg)
	require.NoError(t, err)

	dir := filepath.Join(cfg.OutputDir, "demo")
	assert.Equal(t, dir, res.OutputDir)
	assert.Empty(t, res.Warnings)

	set, err := Plan(cfg)
	require.NoError(t, err)
	assert.Equal(t, paths(set), res.Files)

	for _, rel := range res.Files {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(rel)))
	}

	info, err := os.Stat(filepath.Join(dir, "build.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	assert.ElementsMatch(t, []string{
		"common/streampu/hw/Verilator_sim.hpp",
		"common/streampu/sw/Source.hpp",
	}, res.Copied)
	assert.NoDirExists(t, filepath.Join(dir, "common", ".git"))
	assert.NoDirExists(t, filepath.Join(dir, "common", "build"))
	assert.NoFileExists(t, filepath.Join(dir, "common", "streampu", "hw", "VerilatorSimulation.hpp"))
}

var builtinCommon = []string{
	"common/streampu/hw/VerilatorSimulation.cpp",
	"common/streampu/hw/VerilatorSimulation.hpp",
	"common/streampu/sw/SerialPort.cpp",
	"common/streampu/sw/SerialPort.hpp",
}

func TestSynthesizeBuiltinSupportTree(t *testing.T) {
	for _, toolRoot := range []string{t.TempDir(), ""} {
		cfg := testConfig(t, false, true, true)
		cfg.ToolRoot = toolRoot

		res, err := Synthesize(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, builtinCommon, res.Copied)

		dir := cfg.ProjectDir()
		header := readFile(t, filepath.Join(dir, "common", "streampu", "hw", "VerilatorSimulation.hpp"))
		assert.Contains(t, header, "class Vuniversal_simulation_top;")
		cmake := readFile(t, filepath.Join(dir, "CMakeLists.txt"))
		assert.Contains(t, cmake, "${HULOTTE_COMMON_DIR}/streampu/hw")

		info, err := os.Stat(filepath.Join(dir, "common", "streampu", "sw", "SerialPort.cpp"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

		// Built-in files come out writable, so a second run overwrites them.
		res, err = Synthesize(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, builtinCommon, res.Copied)
	}
}

func TestSynthesizeOverwritesAndIsRepeatable(t *testing.T) {
	cfg := testConfig(t, false, true, false)
	dir := cfg.ProjectDir()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("old"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	_, err := Synthesize(context.Background(), cfg)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "src", "main.cpp"))
	require.NoError(t, err)

	_, err = Synthesize(context.Background(), cfg)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "src", "main.cpp"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(readme))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestWriteMissingSupportTreeWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	set := &ArtifactSet{
		Dirs:  []string{"src"},
		Files: []Artifact{{Path: "CMakeLists.txt", Content: "project(demo CXX)\n", Mode: 0644}},
		Copies: []Copy{{
			ID:       "hw-common",
			Source:   filepath.Join(t.TempDir(), "Common"),
			Embedded: "support/Missing",
			Path:     "common",
		}},
	}

	_, err := Write(context.Background(), dir, set)
	assert.ErrorContains(t, err, "support tree not found")
	assert.NoDirExists(t, dir)
}

func TestWriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set, err := Plan(testConfig(t, false, false, false))
	require.NoError(t, err)

	_, err = Write(ctx, t.TempDir(), set)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteWarnsOnBrokenScript(t *testing.T) {
	set := &ArtifactSet{Files: []Artifact{
		{Path: "run.sh", Content: "#!/bin/bash\nif then fi\n", Mode: 0755},
	}}

	res, err := Write(context.Background(), t.TempDir(), set)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "run.sh")
}

func TestCheckShell(t *testing.T) {
	assert.NoError(t, CheckShell("ok.sh", "#!/bin/bash\necho hi\n"))
	assert.ErrorContains(t, CheckShell("noshebang.sh", "echo hi\n"), "shebang")
	assert.Error(t, CheckShell("broken.sh", "#!/bin/bash\nif [ -f x ]; then\n"))
}

func TestCopyTreeIdempotent(t *testing.T) {
	root := t.TempDir()
	writeCommon(t, root)
	dst := filepath.Join(t.TempDir(), "common")

	first, err := CopyTree(filepath.Join(root, "Common"), dst)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dst, "local.txt"), []byte("mine"), 0644))

	second, err := CopyTree(filepath.Join(root, "Common"), dst)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.FileExists(t, filepath.Join(dst, "local.txt"))
	assert.FileExists(t, filepath.Join(dst, "streampu", "hw", "Verilator_sim.hpp"))
}

func TestCopyTreeRejectsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, nil, 0644))

	_, err := CopyTree(f, t.TempDir())
	assert.ErrorContains(t, err, "not a directory")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestAddModuleToCustomProject(t *testing.T) {
	cfg := testConfig(t, false, true, false)
	_, err := Synthesize(context.Background(), cfg)
	require.NoError(t, err)
	dir := cfg.ProjectDir()

	res, err := AddModule(context.Background(), dir, "Gain")
	require.NoError(t, err)

	assert.Equal(t, "demo", res.ProjectName)
	assert.Equal(t, "gain", res.ModuleVar)
	assert.Equal(t, []string{"src/custom/Gain.hpp", "src/custom/Gain.cpp"}, res.Files)

	header := readFile(t, filepath.Join(dir, "src", "custom", "Gain.hpp"))
	assert.Contains(t, header, "class Gain : public Stateful")

	cmake := readFile(t, filepath.Join(dir, "CMakeLists.txt"))
	assert.Contains(t, cmake, "add_library(demo_custom STATIC\n    src/custom/Gain.cpp\n    src/custom/MyModule.cpp\n)")
	assert.Equal(t, 1, strings.Count(cmake, "add_library(demo_custom"))

	_, err = AddModule(context.Background(), dir, "Gain")
	assert.ErrorContains(t, err, "already exists")
}

func TestAddModuleCreatesCustomLibrary(t *testing.T) {
	cfg := testConfig(t, false, false, false)
	_, err := Synthesize(context.Background(), cfg)
	require.NoError(t, err)
	dir := cfg.ProjectDir()

	_, err = AddModule(context.Background(), dir, "FIRFilter")
	require.NoError(t, err)

	cmake := readFile(t, filepath.Join(dir, "CMakeLists.txt"))
	assert.Contains(t, cmake, "add_library(demo_custom STATIC\n    src/custom/FIRFilter.cpp\n)")
	assert.Contains(t, cmake, "target_link_libraries(demo demo_custom)")
	assert.NotContains(t, cmake, "target_link_libraries(demo ${HULOTTE_LIBS})")
	assert.Less(t, strings.Index(cmake, "add_library(demo_custom"), strings.Index(cmake, "add_executable(demo"))
}

func TestAddModuleRejects(t *testing.T) {
	t.Run("bad identifier", func(t *testing.T) {
		_, err := AddModule(context.Background(), t.TempDir(), "3Stage")
		var verr *project.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "module name", verr.Field)
	})

	t.Run("not a project", func(t *testing.T) {
		_, err := AddModule(context.Background(), t.TempDir(), "Gain")
		assert.ErrorContains(t, err, "not a Hulotte project")
	})

	t.Run("no project line", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte("cmake_minimum_required(VERSION 3.12)\n"), 0644))
		_, err := AddModule(context.Background(), dir, "Gain")
		assert.ErrorContains(t, err, "could not determine project name")
	})
}

func TestBindingHint(t *testing.T) {
	r := &ModuleResult{ModuleName: "Gain", ModuleVar: "gain"}
	assert.Equal(t, []string{
		`#include "custom/Gain.hpp"`,
		`module::Gain gain(n_elmts);`,
		`my_module["process::out"] = gain["process::in"];`,
		`gain["process::out"] = finalizer["finalize::in"];`,
	}, r.BindingHint("my_module"))
}
