// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/okampfer/draftbridge/internal/logging"
)

// Unset is the sentinel value meaning "not configured". Some settings
// sources report a missing value as the literal string "undefined"
// rather than an empty one, so both are treated as unset.
const Unset = "undefined"

// Config holds all configuration parameters for the application,
// resolved once at startup and immutable afterward.
type Config struct {
	// Site is the Jira site hostname (e.g., "acme.atlassian.net")
	Site string

	// ProjectKey is the Jira project key (e.g., "PROJ")
	ProjectKey string

	// IssueType is the Jira issue type name for created issues
	IssueType string

	// IncludeTagsAsLabels controls whether draft tags become issue labels
	IncludeTagsAsLabels bool

	// StaticLabels are labels attached to every created issue
	StaticLabels []string
}

// ConfigurationError reports missing or invalid required settings. It
// halts the run before any credential or network activity.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// projectURLPattern matches an Atlassian Cloud project URL such as
// https://acme.atlassian.net/jira/software/projects/PROJ and captures
// the site hostname and the project key.
var projectURLPattern = regexp.MustCompile(`^https://([a-z0-9][a-z0-9-]*\.atlassian\.net)/jira/.*/projects/([A-Z0-9]+)`)

// ParseProjectURL extracts the site hostname and project key from a
// Jira project URL. It returns ok=false when the URL does not match
// the expected shape; callers then fall back to discrete settings.
func ParseProjectURL(rawURL string) (site, projectKey string, ok bool) {
	m := projectURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// LoadConfig resolves configuration from the environment and
// validates that the mandatory settings are present.
func LoadConfig() (*Config, error) {
	config := Load()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load resolves configuration from a .env file (when present) and
// environment variables, without validating. Callers that layer
// overrides on top (command-line flags) validate afterwards. A
// configured project URL, when it parses, overrides the discrete site
// and project key settings.
func Load() *Config {
	// Load .env from the working directory if one exists; a missing
	// file is not an error
	if err := godotenv.Load(); err == nil {
		logging.Debug("loaded configuration from .env file")
	}

	v := viper.New()
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("site", "DRAFTBRIDGE_SITE")
	v.BindEnv("project", "DRAFTBRIDGE_PROJECT")
	v.BindEnv("project_url", "DRAFTBRIDGE_PROJECT_URL")
	v.BindEnv("issue_type", "DRAFTBRIDGE_ISSUE_TYPE")
	v.BindEnv("tags_as_labels", "DRAFTBRIDGE_TAGS_AS_LABELS")
	v.BindEnv("labels", "DRAFTBRIDGE_LABELS")

	// Optional settings with literal defaults
	v.SetDefault("issue_type", "Task")
	v.SetDefault("tags_as_labels", true)
	v.SetDefault("labels", "sent-from-drafts")

	config := &Config{
		Site:                value(v.GetString("site")),
		ProjectKey:          value(v.GetString("project")),
		IssueType:           v.GetString("issue_type"),
		IncludeTagsAsLabels: v.GetBool("tags_as_labels"),
		StaticLabels:        SplitLabels(v.GetString("labels")),
	}

	// URL-derived mode: a matching project URL wins over the discrete
	// site/project values; a non-matching one falls back to them
	if rawURL := value(v.GetString("project_url")); rawURL != "" {
		if site, key, ok := ParseProjectURL(rawURL); ok {
			config.Site = site
			config.ProjectKey = key
			logging.Debug("derived site and project from project url",
				"site", site,
				"project", key)
		} else {
			logging.Debug("project url did not match expected shape, using discrete settings",
				"url", rawURL)
		}
	}

	return config
}

// Validate ensures that all mandatory settings are present.
func (c *Config) Validate() error {
	var missing []string

	if c.Site == "" {
		missing = append(missing, "DRAFTBRIDGE_SITE")
	}
	if c.ProjectKey == "" {
		missing = append(missing, "DRAFTBRIDGE_PROJECT")
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// SplitLabels splits a comma-separated label setting into its parts,
// dropping empty entries. Normalization happens later, together with
// the draft tags.
func SplitLabels(raw string) []string {
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

// value maps the unset sentinel to an empty string.
func value(s string) string {
	if s == Unset {
		return ""
	}
	return s
}
