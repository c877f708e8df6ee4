// Package issue derives the fields of a new Jira issue from raw draft
// text and tags. Everything in this package is pure data
// transformation with no host or network dependencies.
package issue

import (
	"strings"

	"github.com/okampfer/draftbridge/pkg/models"
)

const (
	// defaultSummary is used when the draft has no usable title line.
	defaultSummary = "Untitled"

	// defaultBody is used when the draft has no text beyond the title.
	defaultBody = "No description."
)

// ExtractFields splits raw draft content into a summary and a
// rich-text description. The first non-empty line becomes the summary;
// the remaining lines, rejoined, become the description body. It never
// fails: empty input yields the literal defaults.
func ExtractFields(content string) (summary string, description models.ADFDocument) {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	// After trimming, the first line is empty only when the whole
	// draft was blank
	summary = lines[0]
	if summary == "" {
		summary = defaultSummary
	}

	body := strings.Join(lines[1:], "\n")
	if body == "" {
		body = defaultBody
	}

	return summary, models.NewADFParagraph(body)
}

// Fields builds the complete issue field set for one draft: summary
// and description from the content, labels merged from the draft tags
// (when enabled) and the configured static labels.
func Fields(content string, tags []string, includeTags bool, staticLabels []string) models.IssueFields {
	summary, description := ExtractFields(content)

	if !includeTags {
		tags = nil
	}

	return models.IssueFields{
		Summary:     summary,
		Description: description,
		Labels:      MergeLabels(tags, staticLabels),
	}
}
