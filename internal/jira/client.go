// Package jira provides functionality for interacting with the Jira
// Cloud REST API v3. Only issue creation is implemented; the request
// and response shapes are dictated by the remote API.
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okampfer/draftbridge/internal/logging"
	"github.com/okampfer/draftbridge/pkg/models"
)

// requestTimeout bounds the single issue-creation call.
const requestTimeout = 30 * time.Second

// Client handles interactions with the Jira API for one site.
type Client struct {
	site       string
	creds      models.Credentials
	httpClient *http.Client

	// baseURL defaults to https://{site}; tests override it
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL replaces the derived https://{site} base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a new Jira API client for the given site hostname
// using basic auth with the email:token pair.
func NewClient(site string, creds models.Credentials, opts ...Option) *Client {
	c := &Client{
		site:       site,
		creds:      creds,
		baseURL:    "https://" + site,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// createPayload is the wire-level body of an issue-creation request.
type createPayload struct {
	Fields payloadFields `json:"fields"`
}

type payloadFields struct {
	Project     projectRef         `json:"project"`
	IssueType   issueTypeRef       `json:"issuetype"`
	Summary     string             `json:"summary"`
	Description models.ADFDocument `json:"description"`
	Labels      []string           `json:"labels"`
}

type projectRef struct {
	Key string `json:"key"`
}

type issueTypeRef struct {
	Name string `json:"name"`
}

// createResponse is the subset of the creation response this tool
// reads.
type createResponse struct {
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssue submits one issue-creation request and interprets the
// terminal response. There are no retries: 201 yields the created
// issue, 403 an AuthorizationError, 400 a ValidationError, and
// anything else (including transport failures) an
// UnknownTransportError.
func (c *Client) CreateIssue(ctx context.Context, projectKey, issueType string, fields models.IssueFields) (models.CreatedIssue, error) {
	payload := createPayload{
		Fields: payloadFields{
			Project:     projectRef{Key: projectKey},
			IssueType:   issueTypeRef{Name: issueType},
			Summary:     fields.Summary,
			Description: fields.Description,
			Labels:      fields.Labels,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.CreatedIssue{}, fmt.Errorf("failed to encode request payload: %w", err)
	}

	url := c.baseURL + "/rest/api/3/issue"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.CreatedIssue{}, fmt.Errorf("failed to build request: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.creds.Email + ":" + c.creds.Token))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	logging.Debug("sending issue creation request",
		"url", url,
		"project", projectKey,
		"issue_type", issueType,
		"labels", fields.Labels,
		"payload", string(body),
		"authorization", logging.MaskSensitive(auth))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection failures are indistinguishable from
		// any other unknown failure for the caller
		return models.CreatedIssue{}, &UnknownTransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.CreatedIssue{}, &UnknownTransportError{StatusCode: resp.StatusCode, Err: err}
	}

	logging.Debug("jira api response",
		"status", resp.StatusCode,
		"body", string(respBody))

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return models.CreatedIssue{}, &AuthorizationError{StatusCode: resp.StatusCode, Body: string(respBody)}
	case resp.StatusCode == http.StatusBadRequest:
		return models.CreatedIssue{}, &ValidationError{StatusCode: resp.StatusCode, Body: string(respBody)}
	case resp.StatusCode == http.StatusCreated:
		var created createResponse
		if err := json.Unmarshal(respBody, &created); err != nil {
			return models.CreatedIssue{}, &UnknownTransportError{StatusCode: resp.StatusCode, Body: string(respBody), Err: err}
		}
		return models.CreatedIssue{
			Key:       created.Key,
			Self:      created.Self,
			BrowseURL: fmt.Sprintf("https://%s/browse/%s", c.site, created.Key),
		}, nil
	default:
		return models.CreatedIssue{}, &UnknownTransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
}
