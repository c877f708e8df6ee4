package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalStreams(t *testing.T) {
	var out, errOut strings.Builder
	n := &Terminal{
		out: &out,
		err: &errOut,
		copyToClipboard: func(string) error {
			return nil
		},
	}

	n.Success("Created PROJ-12 in Jira")
	n.Error("Failed to create Jira issue.")

	assert.Equal(t, "Created PROJ-12 in Jira\n", out.String())
	assert.Equal(t, "Failed to create Jira issue.\n", errOut.String())
}

func TestSetClipboard(t *testing.T) {
	var copied string
	n := &Terminal{
		out: &strings.Builder{},
		err: &strings.Builder{},
		copyToClipboard: func(text string) error {
			copied = text
			return nil
		},
	}

	n.SetClipboard("https://acme.atlassian.net/browse/PROJ-12")
	assert.Equal(t, "https://acme.atlassian.net/browse/PROJ-12", copied)
}

func TestSetClipboardFailureIsIgnored(t *testing.T) {
	n := &Terminal{
		out: &strings.Builder{},
		err: &strings.Builder{},
		copyToClipboard: func(string) error {
			return errors.New("no display")
		},
	}

	// Must not panic or surface the error
	n.SetClipboard("anything")
}
