// Package bridge runs the draft-to-issue pipeline: derive issue
// fields from the draft, submit one creation request, and on success
// write the back-link into the draft. The host capabilities (tracker,
// draft, notifications) are injected so the pipeline is testable
// without any of them present.
package bridge

import (
	"context"
	"fmt"

	"github.com/okampfer/draftbridge/internal/config"
	"github.com/okampfer/draftbridge/internal/issue"
	"github.com/okampfer/draftbridge/internal/jira"
	"github.com/okampfer/draftbridge/internal/logging"
	"github.com/okampfer/draftbridge/pkg/models"
)

// IssueCreator submits one issue-creation request.
type IssueCreator interface {
	CreateIssue(ctx context.Context, projectKey, issueType string, fields models.IssueFields) (models.CreatedIssue, error)
}

// Draft is the source note: read once, mutated at most once.
type Draft interface {
	Content() string
	Tags() []string
	Prepend(text, separator string)
	Update() error
}

// Notifier surfaces the run outcome to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
	SetClipboard(text string)
}

// Bridge wires one run of the pipeline.
type Bridge struct {
	Config  *config.Config
	Creator IssueCreator
	Draft   Draft
	Notify  Notifier
}

// Run executes the pipeline once, synchronously. On success exactly
// one back-link is prepended to the draft, one success notification is
// shown, and the issue URL lands on the clipboard. On any failure the
// draft is left untouched and an error notification is shown; the
// error is returned for the exit code.
func (b *Bridge) Run(ctx context.Context) error {
	fields := issue.Fields(
		b.Draft.Content(),
		b.Draft.Tags(),
		b.Config.IncludeTagsAsLabels,
		b.Config.StaticLabels,
	)

	logging.Info("creating jira issue",
		"site", b.Config.Site,
		"project", b.Config.ProjectKey,
		"issue_type", b.Config.IssueType,
		"summary", fields.Summary,
		"labels", fields.Labels)

	created, err := b.Creator.CreateIssue(ctx, b.Config.ProjectKey, b.Config.IssueType, fields)
	if err != nil {
		b.Notify.Error(failureMessage(err))
		return err
	}

	link := fmt.Sprintf("Jira Issue: [%s](%s)", created.Key, created.BrowseURL)
	b.Draft.Prepend(link, "\n\n")
	if err := b.Draft.Update(); err != nil {
		// The issue exists at this point, so tell the user where it
		// went even though the draft could not be updated
		b.Notify.Error(fmt.Sprintf("Created %s but failed to update the draft: %v", created.Key, err))
		return err
	}

	b.Notify.Success(fmt.Sprintf("Created %s in Jira", created.Key))
	b.Notify.SetClipboard(created.BrowseURL)

	logging.Info("issue created",
		"key", created.Key,
		"url", created.BrowseURL)
	return nil
}

// failureMessage maps the error taxonomy to the user-facing
// notification text.
func failureMessage(err error) string {
	switch {
	case jira.IsAuthorizationError(err):
		return "Access denied. Check your Jira permissions, or run 'draftbridge auth forget' and try again."
	case jira.IsValidationError(err):
		return "Bad request. Check the project key and required fields."
	default:
		return "Failed to create Jira issue. Rerun with LOG_LEVEL=debug for details."
	}
}
