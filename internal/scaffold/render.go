package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"
)

//go:embed artifacts.yaml templates support
var scaffoldFS embed.FS

const templatesDir = "templates"

var funcs = template.FuncMap{
	"enabled": func(on bool) string {
		if on {
			return "enabled"
		}
		return "disabled"
	},
}

// Render executes the embedded template id (a path under templates/, e.g.
// "main.cpp.tmpl") with data. It has no side effects.
func Render(id string, data TemplateContext) (string, error) {
	src, err := fs.ReadFile(scaffoldFS, path.Join(templatesDir, id))
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", id, err)
	}

	tmpl, err := template.New(id).Funcs(funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", id, err)
	}
	return buf.String(), nil
}
