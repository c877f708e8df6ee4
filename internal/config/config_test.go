package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv sets an environment variable for the duration of a test.
func setEnv(t *testing.T, key, value string) {
	t.Helper()
	orig := os.Getenv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		require.NoError(t, os.Setenv(key, orig))
	})
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		site       string
		project    string
		projectURL string
		wantErr    bool
		wantSite   string
		wantKey    string
	}{
		{
			name:     "Discrete site and project",
			site:     "acme.atlassian.net",
			project:  "PROJ",
			wantSite: "acme.atlassian.net",
			wantKey:  "PROJ",
		},
		{
			name:       "Project URL overrides discrete settings",
			site:       "other.atlassian.net",
			project:    "OTHER",
			projectURL: "https://acme.atlassian.net/jira/software/projects/PROJ",
			wantSite:   "acme.atlassian.net",
			wantKey:    "PROJ",
		},
		{
			name:       "Non-matching URL falls back to discrete settings",
			site:       "acme.atlassian.net",
			project:    "PROJ",
			projectURL: "https://example.com/boards/42",
			wantSite:   "acme.atlassian.net",
			wantKey:    "PROJ",
		},
		{
			name:    "Missing site",
			site:    "",
			project: "PROJ",
			wantErr: true,
		},
		{
			name:    "Missing project",
			site:    "acme.atlassian.net",
			project: "",
			wantErr: true,
		},
		{
			name:    "Sentinel undefined counts as missing",
			site:    "undefined",
			project: "PROJ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, "DRAFTBRIDGE_SITE", tt.site)
			setEnv(t, "DRAFTBRIDGE_PROJECT", tt.project)
			setEnv(t, "DRAFTBRIDGE_PROJECT_URL", tt.projectURL)

			config, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSite, config.Site)
			assert.Equal(t, tt.wantKey, config.ProjectKey)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setEnv(t, "DRAFTBRIDGE_SITE", "acme.atlassian.net")
	setEnv(t, "DRAFTBRIDGE_PROJECT", "PROJ")
	setEnv(t, "DRAFTBRIDGE_PROJECT_URL", "")
	setEnv(t, "DRAFTBRIDGE_ISSUE_TYPE", "")
	setEnv(t, "DRAFTBRIDGE_TAGS_AS_LABELS", "")
	setEnv(t, "DRAFTBRIDGE_LABELS", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Task", config.IssueType)
	assert.True(t, config.IncludeTagsAsLabels)
	assert.Equal(t, []string{"sent-from-drafts"}, config.StaticLabels)
}

func TestParseProjectURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantSite string
		wantKey  string
		wantOK   bool
	}{
		{
			name:     "Software project URL",
			url:      "https://acme.atlassian.net/jira/software/projects/PROJ",
			wantSite: "acme.atlassian.net",
			wantKey:  "PROJ",
			wantOK:   true,
		},
		{
			name:     "URL with board suffix",
			url:      "https://acme.atlassian.net/jira/software/c/projects/OPS123/boards/4",
			wantSite: "acme.atlassian.net",
			wantKey:  "OPS123",
			wantOK:   true,
		},
		{
			name:   "Non-Atlassian host",
			url:    "https://example.com/jira/software/projects/PROJ",
			wantOK: false,
		},
		{
			name:   "Lowercase project key",
			url:    "https://acme.atlassian.net/jira/software/projects/proj",
			wantOK: false,
		},
		{
			name:   "Not a URL",
			url:    "acme PROJ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, key, ok := ParseProjectURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSite, site)
				assert.Equal(t, tt.wantKey, key)
			}
		})
	}
}

func TestSplitLabels(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitLabels("a, b"))
	assert.Equal(t, []string{"sent-from-drafts"}, SplitLabels("sent-from-drafts"))
	assert.Nil(t, SplitLabels(""))
	assert.Nil(t, SplitLabels(" , ,"))
}
