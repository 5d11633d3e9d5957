package scaffold

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CheckShell parses a generated bash script and reports syntax errors.
func CheckShell(name, script string) error {
	if !strings.HasPrefix(script, "#!") {
		return fmt.Errorf("%s: missing shebang line", name)
	}
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(script), name); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
