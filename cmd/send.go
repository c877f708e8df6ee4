package cmd

import (
	"github.com/spf13/cobra"

	"github.com/okampfer/draftbridge/internal/bridge"
	"github.com/okampfer/draftbridge/internal/config"
	"github.com/okampfer/draftbridge/internal/credential"
	"github.com/okampfer/draftbridge/internal/draft"
	"github.com/okampfer/draftbridge/internal/jira"
	"github.com/okampfer/draftbridge/internal/logging"
	"github.com/okampfer/draftbridge/internal/notify"
)

// sendOptions are the flag values layered over the environment
// configuration.
type sendOptions struct {
	site        string
	project     string
	projectURL  string
	issueType   string
	labels      []string
	noTagLabels bool
}

var sendOpts sendOptions

// sendCmd runs the whole pipeline for one note file.
var sendCmd = &cobra.Command{
	Use:   "send <note.md>",
	Short: "Create a Jira issue from a note",
	Long: `Create a Jira issue from a note file and prepend the issue link to it.

The first line of the note becomes the issue summary and the remaining
lines become the description. Tags from the note's YAML frontmatter are
normalized into issue labels, merged with the configured static labels.

Pass '-' to read the note from stdin; the updated note is then written
to stdout instead of back to a file.

Example:
  draftbridge send inbox/idea.md --project PROJ --type Task`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(sendOpts)
		if err != nil {
			return err
		}

		var d *draft.Draft
		if args[0] == "-" {
			d, err = draft.FromReader(cmd.InOrStdin(), cmd.OutOrStdout())
		} else {
			d, err = draft.Load(args[0])
		}
		if err != nil {
			return err
		}

		store, err := credential.NewStore()
		if err != nil {
			return err
		}

		// May prompt on first use
		creds, err := store.Credentials()
		if err != nil {
			return err
		}

		b := &bridge.Bridge{
			Config:  cfg,
			Creator: jira.NewClient(cfg.Site, creds),
			Draft:   d,
			Notify:  notify.NewTerminal(),
		}
		return b.Run(cmd.Context())
	},
}

// resolveConfig loads the environment configuration, applies flag
// overrides, and validates the result. Flags win over environment
// values; a --project-url that parses wins over --site/--project from
// the environment but not over explicit --site/--project flags.
func resolveConfig(opts sendOptions) (*config.Config, error) {
	cfg := config.Load()

	if opts.projectURL != "" {
		if site, key, ok := config.ParseProjectURL(opts.projectURL); ok {
			cfg.Site = site
			cfg.ProjectKey = key
		} else {
			logging.Warn("project url did not match expected shape, ignoring",
				"url", opts.projectURL)
		}
	}
	if opts.site != "" {
		cfg.Site = opts.site
	}
	if opts.project != "" {
		cfg.ProjectKey = opts.project
	}
	if opts.issueType != "" {
		cfg.IssueType = opts.issueType
	}
	if len(opts.labels) > 0 {
		cfg.StaticLabels = opts.labels
	}
	if opts.noTagLabels {
		cfg.IncludeTagsAsLabels = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	sendCmd.Flags().StringVar(&sendOpts.site, "site", "", "Jira site hostname (e.g., 'acme.atlassian.net')")
	sendCmd.Flags().StringVarP(&sendOpts.project, "project", "p", "", "Jira project key (e.g., 'PROJ')")
	sendCmd.Flags().StringVar(&sendOpts.projectURL, "project-url", "", "Jira project URL to derive site and project key from")
	sendCmd.Flags().StringVarP(&sendOpts.issueType, "type", "t", "", "Jira issue type (default 'Task')")
	sendCmd.Flags().StringArrayVarP(&sendOpts.labels, "label", "l", nil, "static label to attach (repeatable, replaces configured labels)")
	sendCmd.Flags().BoolVar(&sendOpts.noTagLabels, "no-tag-labels", false, "do not turn note tags into issue labels")
}
