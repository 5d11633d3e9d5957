package manifest

import "strings"

// Feature names usable in an entry's `when` list.
const (
	FeatureAFF3CT   = "aff3ct"
	FeatureCustom   = "custom"
	FeatureHardware = "hardware"
)

// Features lists every feature name, sorted.
var Features = []string{FeatureAFF3CT, FeatureCustom, FeatureHardware}

// Catalogue is the ordered list of artifacts a generator can emit.
type Catalogue struct {
	Version   int     `yaml:"version"`
	Artifacts []Entry `yaml:"artifacts"`
}

// Entry is one artifact. Exactly one of Template and Copy is set: Template
// names an embedded template rendered to Path, Copy names a support tree
// copied recursively to Path.
type Entry struct {
	ID         string   `yaml:"id"`
	Path       string   `yaml:"path"`
	Template   string   `yaml:"template,omitempty"`
	Copy       string   `yaml:"copy,omitempty"`
	When       []string `yaml:"when,omitempty"`
	Executable bool     `yaml:"executable,omitempty"`
}

// Enabled reports whether every feature in When is on.
func (e Entry) Enabled(features map[string]bool) bool {
	for _, f := range e.When {
		if !features[f] {
			return false
		}
	}
	return true
}

// IsCopy reports whether the entry copies a directory tree.
func (e Entry) IsCopy() bool { return e.Copy != "" }

// Issue is one problem in a catalogue. Path is a JSON pointer into the
// document, empty when the problem concerns the whole document.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func joinIssues(issues []Issue) string {
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.String()
	}
	return strings.Join(msgs, "; ")
}
