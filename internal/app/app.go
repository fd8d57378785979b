package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ereft/gojo/internal/config"
	"github.com/ereft/gojo/internal/ereft"
	"github.com/ereft/gojo/internal/prefs"
	"github.com/ereft/gojo/internal/session"
	"github.com/ereft/gojo/internal/ui"
)

// Options configure the gojo application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gojo/prefs.toml

	// ListingID opens the app directly on one listing when set.
	ListingID string

	// Timeout overrides the configured request timeout when positive.
	Timeout time.Duration
}

func requestTimeout(cfg config.Config, override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return cfg.RequestTimeout
}

// Run boots the gojo TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := ereft.NewClient(cfg.APIURL, requestTimeout(cfg, opts.Timeout))
	if err != nil {
		return fmt.Errorf("init listings client: %w", err)
	}

	store, err := session.NewFileStore(cfg.CredentialsPath)
	if err != nil {
		return fmt.Errorf("init credential store: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		API:       client,
		Session:   store.Session(),
		Creds:     store,
		ListingID: opts.ListingID,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
