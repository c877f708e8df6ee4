// Package credential supplies the Jira email + API token pair. The
// pair lives in the OS keyring; on first use the user is prompted once
// and the values are cached there. The rest of the pipeline treats the
// stored pair as read-only.
package credential

import (
	"errors"
	"fmt"
	"strings"

	"github.com/99designs/keyring"
	"github.com/charmbracelet/huh"

	"github.com/okampfer/draftbridge/internal/logging"
	"github.com/okampfer/draftbridge/pkg/models"
)

const (
	serviceName = "draftbridge"

	keyEmail = "email"
	keyToken = "token"
)

// PromptFunc collects the credential pair interactively. It is a
// function so tests can supply canned values.
type PromptFunc func() (models.Credentials, error)

// Store is the keyring-backed credential provider.
type Store struct {
	ring   keyring.Keyring
	prompt PromptFunc
}

// NewStore opens the OS keyring for this tool.
func NewStore() (*Store, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/draftbridge/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt(serviceName + "-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	return &Store{ring: ring, prompt: promptForm}, nil
}

// newStoreWith wires an explicit keyring and prompt; used by tests.
func newStoreWith(ring keyring.Keyring, prompt PromptFunc) *Store {
	return &Store{ring: ring, prompt: prompt}
}

// Credentials returns the cached pair, prompting the user and caching
// the result on first use.
func (s *Store) Credentials() (models.Credentials, error) {
	email, emailErr := s.get(keyEmail)
	token, tokenErr := s.get(keyToken)
	if emailErr == nil && tokenErr == nil {
		logging.Debug("using cached credentials",
			"email", email,
			"token", logging.MaskSensitive(token))
		return models.Credentials{Email: email, Token: token}, nil
	}

	// A broken keyring is not the same as a first run
	if emailErr != nil && !isMiss(emailErr) {
		return models.Credentials{}, emailErr
	}
	if tokenErr != nil && !isMiss(tokenErr) {
		return models.Credentials{}, tokenErr
	}

	return s.Login()
}

// Login prompts for the pair and stores it, replacing any cached
// values.
func (s *Store) Login() (models.Credentials, error) {
	creds, err := s.prompt()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("failed to collect credentials: %w", err)
	}

	if err := s.set(keyEmail, creds.Email); err != nil {
		return models.Credentials{}, err
	}
	if err := s.set(keyToken, creds.Token); err != nil {
		return models.Credentials{}, err
	}

	logging.Info("stored jira credentials",
		"email", creds.Email,
		"token", logging.MaskSensitive(creds.Token))
	return creds, nil
}

// Forget removes the cached pair. Missing keys are not an error so
// forgetting twice is harmless.
func (s *Store) Forget() error {
	for _, key := range []string{keyEmail, keyToken} {
		if err := s.ring.Remove(key); err != nil && !isMiss(err) {
			return fmt.Errorf("failed to remove credential %q: %w", key, err)
		}
	}
	return nil
}

func (s *Store) get(key string) (string, error) {
	item, err := s.ring.Get(key)
	if err != nil {
		if isMiss(err) {
			return "", err
		}
		return "", fmt.Errorf("failed to read credential %q: %w", key, err)
	}
	return string(item.Data), nil
}

func (s *Store) set(key, value string) error {
	err := s.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
	if err != nil {
		return fmt.Errorf("failed to store credential %q: %w", key, err)
	}
	return nil
}

// isMiss reports whether err means the key simply is not there yet.
func isMiss(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound)
}

// promptForm asks for the email and API token in the terminal, with
// the token input masked.
func promptForm() (models.Credentials, error) {
	var creds models.Credentials

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email Address").
				Description("The Atlassian account email").
				Validate(notEmpty).
				Value(&creds.Email),
			huh.NewInput().
				Title("API Token").
				Description("An API token from id.atlassian.com").
				EchoMode(huh.EchoModePassword).
				Validate(notEmpty).
				Value(&creds.Token),
		),
	)

	if err := form.Run(); err != nil {
		return models.Credentials{}, err
	}

	creds.Email = strings.TrimSpace(creds.Email)
	creds.Token = strings.TrimSpace(creds.Token)
	return creds, nil
}

func notEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value is required")
	}
	return nil
}
