package manifest

import "fmt"

// Parse validates data and decodes it. All problems are reported together
// in one error.
func Parse(data []byte) (*Catalogue, error) {
	c, issues, err := check(data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("invalid artifact catalogue: %s", joinIssues(issues))
	}
	return c, nil
}
