package manifest

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// ruleIssues checks what the schema cannot: one source per entry, known
// features, executable entries being shell scripts, paths that stay inside
// the project and unique ids and paths.
func ruleIssues(c *Catalogue) []Issue {
	var issues []Issue
	add := func(i int, field, format string, args ...any) {
		loc := fmt.Sprintf("/artifacts/%d", i)
		if field != "" {
			loc += "/" + field
		}
		issues = append(issues, Issue{Path: loc, Message: fmt.Sprintf(format, args...)})
	}

	ids := map[string]int{}
	paths := map[string]int{}
	for i, e := range c.Artifacts {
		switch {
		case e.Template == "" && e.Copy == "":
			add(i, "", "needs a template or a copy source")
		case e.Template != "" && e.Copy != "":
			add(i, "copy", "template and copy are mutually exclusive")
		}

		for j, f := range e.When {
			if !slices.Contains(Features, f) {
				add(i, fmt.Sprintf("when/%d", j), "unknown feature %q (known: %s)", f, strings.Join(Features, ", "))
			}
		}

		if e.Executable {
			if e.IsCopy() {
				add(i, "executable", "copied trees keep their own modes and cannot be executable")
			} else if !strings.HasSuffix(e.Path, ".sh") {
				add(i, "executable", "executable artifact %q must be a .sh script", e.Path)
			}
		}

		for _, field := range []struct{ name, value string }{{"path", e.Path}, {"template", e.Template}, {"copy", e.Copy}} {
			if field.value != "" && escapes(field.value) {
				add(i, field.name, "%q leaves its root directory", field.value)
			}
		}

		if first, ok := ids[e.ID]; ok {
			add(i, "id", "duplicate id %q (first used by artifact %d)", e.ID, first)
		} else {
			ids[e.ID] = i
		}
		clean := path.Clean(e.Path)
		if first, ok := paths[clean]; ok {
			add(i, "path", "%q is already produced by %q", e.Path, c.Artifacts[first].ID)
		} else {
			paths[clean] = i
		}
	}
	return issues
}

func escapes(p string) bool {
	clean := path.Clean(p)
	return clean == ".." || strings.HasPrefix(clean, "../")
}
