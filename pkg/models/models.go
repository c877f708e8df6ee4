// Package models defines data structures shared across the application.
package models

// Credentials is the email + API token pair used for Jira basic auth.
// The pair is owned by the credential store; everything else treats it
// as read-only.
type Credentials struct {
	// Email is the Atlassian account email address
	Email string

	// Token is the Atlassian API token
	Token string
}

// IssueFields holds the fields derived from a draft for a new Jira issue.
// It exists only for the duration of one run.
type IssueFields struct {
	// Summary is the issue title, taken from the first line of the draft
	Summary string

	// Description is the issue body in Atlassian Document Format
	Description ADFDocument

	// Labels is the deduplicated, normalized label set
	Labels []string
}

// CreatedIssue describes the issue the tracker reports back after a
// successful creation request.
type CreatedIssue struct {
	// Key is the issue identifier (e.g., "PROJ-12")
	Key string

	// Self is the API self-link returned by the tracker
	Self string

	// BrowseURL is the human-facing issue URL (https://{site}/browse/{key})
	BrowseURL string
}

// ADFDocument is a minimal Atlassian Document Format document. The REST
// API v3 requires the description field in this shape rather than plain
// text. Only the single-paragraph form this tool produces is modeled.
type ADFDocument struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []ADFNode `json:"content"`
}

// ADFNode is a node inside an ADF document: a paragraph holding text
// runs, or a text run itself.
type ADFNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []ADFNode `json:"content,omitempty"`
}

// NewADFParagraph wraps body text in the fixed envelope used for issue
// descriptions: one document, one paragraph, one text run.
func NewADFParagraph(body string) ADFDocument {
	return ADFDocument{
		Type:    "doc",
		Version: 1,
		Content: []ADFNode{
			{
				Type: "paragraph",
				Content: []ADFNode{
					{Type: "text", Text: body},
				},
			},
		},
	}
}
