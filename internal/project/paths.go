package project

import (
	"os"
	"path/filepath"
	"strings"
)

// Marker files that identify a usable library checkout.
var (
	StreamPUMarker = filepath.Join("build", "lib", "libstreampu.a")
	AFF3CTMarker   = filepath.Join("include", "aff3ct.hpp")
)

// library describes one root path the resolver has to settle.
type library struct {
	label    string // e.g. "StreamPU"
	field    string // ValidationError field
	marker   string
	artifact string // basename shown in warnings
}

var (
	streampuLib = library{label: "StreamPU", field: "StreamPU root", marker: StreamPUMarker, artifact: "libstreampu.a"}
	aff3ctLib   = library{label: "AFF3CT", field: "AFF3CT root", marker: AFF3CTMarker, artifact: "aff3ct.hpp"}
)

// markerPath returns the artifact that proves root is usable.
func (l library) markerPath(root string) string {
	return filepath.Join(root, l.marker)
}

// expandPath expands a leading ~ and makes p absolute.
func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
