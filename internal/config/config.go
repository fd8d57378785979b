// Package config loads the gojo client configuration.
//
// Configuration lives at ~/.config/gojo/config.toml and covers where the
// listings backend is and how long requests may run. A missing file is not
// an error: every field has a default suited to a local backend.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields gojo needs to reach the listings API.
type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	CredentialsPath string
}

const (
	defaultConfigPath      = "~/.config/gojo/config.toml"
	defaultAPIURL          = "http://127.0.0.1:8000"
	defaultCredentialsPath = "~/.config/gojo/credentials.toml"
	defaultTimeoutSeconds  = 10
)

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:          defaultAPIURL,
		RequestTimeout:  defaultTimeoutSeconds * time.Second,
		CredentialsPath: mustExpand(defaultCredentialsPath),
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file struct {
		APIURL                string `toml:"api_url"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		CredentialsPath       string `toml:"credentials_path"`
	}
	if err := toml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(file.APIURL); url != "" {
		cfg.APIURL = url
	}
	if file.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(file.RequestTimeoutSeconds) * time.Second
	}
	if creds := strings.TrimSpace(file.CredentialsPath); creds != "" {
		cfg.CredentialsPath = mustExpand(creds)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
