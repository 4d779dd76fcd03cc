package maven

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SortVersions returns versions newest first with duplicates removed.
// Versions semver cannot parse keep their relative order after all
// parseable ones.
func SortVersions(versions []string) []string {
	type entry struct {
		raw string
		v   *semver.Version
	}

	seen := make(map[string]bool, len(versions))
	var parsed, unparsed []entry
	for _, raw := range versions {
		raw = strings.TrimSpace(raw)
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true
		if v, err := semver.NewVersion(raw); err == nil {
			parsed = append(parsed, entry{raw: raw, v: v})
		} else {
			unparsed = append(unparsed, entry{raw: raw})
		}
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].v.GreaterThan(parsed[j].v)
	})

	out := make([]string, 0, len(parsed)+len(unparsed))
	for _, e := range parsed {
		out = append(out, e.raw)
	}
	for _, e := range unparsed {
		out = append(out, e.raw)
	}
	return out
}

// IsSnapshot reports whether v is a Maven snapshot version.
func IsSnapshot(v string) bool {
	return strings.HasSuffix(strings.ToUpper(v), "-SNAPSHOT")
}
