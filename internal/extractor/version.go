package extractor

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-version"
)

// NormalizeVersion strips a single leading "v" from a Node version string
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}

// AddVersionPrefix returns v with exactly one leading "v"
func AddVersionPrefix(v string) string {
	return "v" + NormalizeVersion(v)
}

// SortVersionDirs orders nvm version directory names by semantic version,
// oldest first. Names that do not parse as versions go last in lexical order.
func SortVersionDirs(dirs []string) []string {
	type entry struct {
		name   string
		parsed *version.Version
	}

	entries := make([]entry, 0, len(dirs))
	for _, d := range dirs {
		v, err := version.NewVersion(d)
		if err != nil {
			v = nil
		}
		entries = append(entries, entry{name: d, parsed: v})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].parsed, entries[j].parsed
		switch {
		case a != nil && b != nil:
			if a.Equal(b) {
				return entries[i].name < entries[j].name
			}
			return a.LessThan(b)
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return entries[i].name < entries[j].name
		}
	})

	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.name
	}
	return sorted
}
