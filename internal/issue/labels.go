package issue

import (
	"regexp"
	"strings"
)

// Jira rejects labels containing spaces and is case-sensitive about
// the rest, so tags are normalized before they are attached: lowercase,
// underscores and anything outside [a-z0-9-] become hyphens, hyphen
// runs collapse, and edge hyphens are stripped. "Needs Review" and
// "needs_review" both normalize to "needs-review".
var (
	invalidLabelChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns        = regexp.MustCompile(`-+`)
)

// NormalizeLabel converts a raw tag into a Jira-safe label token. The
// result is empty when the input contains nothing usable. Normalization
// is idempotent: an already-normalized token comes back unchanged.
func NormalizeLabel(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.ReplaceAll(label, "_", "-")
	label = invalidLabelChars.ReplaceAllString(label, "-")
	label = hyphenRuns.ReplaceAllString(label, "-")
	return strings.Trim(label, "-")
}

// MergeLabels normalizes two label sources and merges them into one
// ordered set: tags first, then static labels, deduplicated by exact
// post-normalization equality, first occurrence wins. Tokens that
// normalize to the empty string are dropped.
func MergeLabels(tags, staticLabels []string) []string {
	seen := make(map[string]bool)
	merged := []string{}

	for _, raw := range append(append([]string{}, tags...), staticLabels...) {
		label := NormalizeLabel(raw)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		merged = append(merged, label)
	}

	return merged
}
