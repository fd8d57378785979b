// Package session models the viewer's identity and credential access.
//
// A Session is either anonymous or carries the authenticated user's id. The
// bearer credential itself is never held on the Session: mutations read it
// through a CredentialProvider at request time, so an expired or revoked
// token written by the platform's login tooling takes effect immediately
// and nothing caches it beyond a single request.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Session identifies the current viewer.
type Session struct {
	UserID   int64
	Username string
}

// Authenticated reports whether the session belongs to a signed-in user.
func (s Session) Authenticated() bool {
	return s.UserID != 0
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// CredentialProvider supplies the bearer credential for one request. An
// empty token with a nil error means no credential is available.
type CredentialProvider interface {
	Token() (string, error)
}

// StaticCredentials is a fixed-token provider, used by tests and by flows
// that already hold a credential.
type StaticCredentials string

// Token implements CredentialProvider.
func (s StaticCredentials) Token() (string, error) {
	return string(s), nil
}

const defaultCredentialsPath = "~/.config/gojo/credentials.toml"

// credentialsFile mirrors the TOML written by the platform's login tooling.
type credentialsFile struct {
	Token    string `toml:"token"`
	UserID   int64  `toml:"user_id"`
	Username string `toml:"username"`
}

// FileStore reads credentials from a TOML file. The file is re-read on
// every Token call so external renewal or logout is picked up mid-session.
type FileStore struct {
	path string
}

// NewFileStore builds a store for the given path; empty uses the default.
func NewFileStore(path string) (*FileStore, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: resolved}, nil
}

// Session reads the stored identity. A missing or unreadable file yields
// the anonymous session rather than an error: an unauthenticated visitor is
// a normal state, not a failure.
func (f *FileStore) Session() Session {
	creds, err := f.read()
	if err != nil {
		return Anonymous()
	}
	return Session{UserID: creds.UserID, Username: creds.Username}
}

// Token implements CredentialProvider.
func (f *FileStore) Token() (string, error) {
	creds, err := f.read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(creds.Token), nil
}

func (f *FileStore) read() (credentialsFile, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return credentialsFile{}, err
	}
	var creds credentialsFile
	if err := toml.Unmarshal(raw, &creds); err != nil {
		return credentialsFile{}, fmt.Errorf("parse credentials: %w", err)
	}
	return creds, nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultCredentialsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
