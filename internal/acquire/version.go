package acquire

import (
	"context"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/madellimac/hulotte/internal/runtime"
)

// shownTags caps how many tags are listed before the version question.
const shownTags = 10

// ParseTags extracts tag names from `git ls-remote --tags` output. Peeled
// entries (^{}) are dropped and duplicates removed; the result is sorted
// newest first.
func ParseTags(lsRemote string) []string {
	seen := map[string]bool{}
	var tags []string
	for _, line := range strings.Split(lsRemote, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		ref := fields[1]
		if !strings.HasPrefix(ref, "refs/tags/") || strings.HasSuffix(ref, "^{}") {
			continue
		}
		tag := strings.TrimPrefix(ref, "refs/tags/")
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	SortTags(tags)
	return tags
}

// SortTags orders tags newest first. Tags that parse as semantic versions
// (with or without a leading "v") come first in descending version order;
// the rest follow in descending lexicographic order.
func SortTags(tags []string) {
	slices.SortStableFunc(tags, compareTags)
}

func compareTags(a, b string) int {
	va, errA := parseSemver(a)
	vb, errB := parseSemver(b)
	switch {
	case errA == nil && errB == nil:
		if c := vb.Compare(va); c != 0 {
			return c
		}
		return strings.Compare(b, a)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(b, a)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(tag string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(tag, "v"))
}

// resolveVersion picks the ref to clone. An empty result means the
// remote's default branch. Failing to list tags is not fatal.
func (p *Pipeline) resolveVersion(ctx context.Context, lib Library, url string) (string, error) {
	cmd := runtime.Command{Name: "git", Args: []string{"ls-remote", "--tags", url}}
	p.Log.Debug("listing tags", "library", lib.Name, "cmd", cmd.String())

	out, err := p.Runner.Run(ctx, cmd)
	if err != nil && ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil || !out.Success() {
		p.Log.Warn("could not list tags", "library", lib.Name, "err", err, "output", out.Tail(3))
		p.Out.Warning("Could not fetch %s tags, using the default branch", lib.Name)
		return "", nil
	}

	tags := ParseTags(out.Stdout)
	if len(tags) == 0 {
		p.Out.Info("No tags found for %s", lib.Name)
		return p.Prompter.Input(ctx, lib.Name+" version (empty for the default branch)", "")
	}

	shown := tags
	if len(shown) > shownTags {
		shown = shown[:shownTags]
	}
	p.Out.Info("Available %s versions: %s", lib.Name, strings.Join(shown, ", "))

	ref, err := p.Prompter.Input(ctx, lib.Name+" version", tags[0])
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(ref), nil
}
