package detail

import (
	"context"
	"errors"
	"strings"

	"github.com/ereft/gojo/internal/ereft"
	"github.com/ereft/gojo/internal/session"
)

// UserPrompt is the destructive-action confirmation and notice surface the
// controller talks to. The TUI backs it with a modal and a notice bar;
// tests back it with a recorder.
type UserPrompt interface {
	Confirm(message string) bool
	Notify(message string)
}

// User-facing mutation strings. Backend detail messages take precedence
// over the fallbacks when a response carries one.
const (
	FavoriteFailedMessage = "Failed to update favorite"
	DeleteFailedMessage   = "Failed to delete property"
	DeleteConfirmMessage  = "Are you sure you want to delete this property?"
	DeletedMessage        = "Property deleted successfully"
)

// Controller performs the two mutations the detail screen offers. All
// collaborators are injected; nothing is read from ambient state.
type Controller struct {
	api    ereft.API
	creds  session.CredentialProvider
	prompt UserPrompt
}

// NewController wires a Controller from its collaborators.
func NewController(api ereft.API, creds session.CredentialProvider, prompt UserPrompt) *Controller {
	return &Controller{api: api, creds: creds, prompt: prompt}
}

// WithPrompt returns a copy of the controller bound to a different prompt.
// The UI uses this to hand each action its own capture of confirmations and
// notices.
func (c *Controller) WithPrompt(prompt UserPrompt) *Controller {
	clone := *c
	clone.prompt = prompt
	return &clone
}

// ToggleOutcome reports the result of a favorite toggle.
type ToggleOutcome struct {
	// SignIn means the viewer must authenticate first; no request was
	// issued and Favorite is unchanged.
	SignIn bool
	// Favorite is the resulting local flag. It differs from the input only
	// when the backend confirmed the toggle.
	Favorite bool
	// Err is the request failure, already surfaced through the prompt.
	Err error
}

// ToggleFavorite issues the opposite-of-current-state favorite request and
// flips the local flag only after the backend confirms. Anonymous sessions
// and absent credentials route to sign-in without touching the network.
func (c *Controller) ToggleFavorite(ctx context.Context, sess session.Session, id string, current bool) ToggleOutcome {
	if !sess.Authenticated() {
		return ToggleOutcome{SignIn: true, Favorite: current}
	}
	token, err := c.creds.Token()
	if err != nil || strings.TrimSpace(token) == "" {
		return ToggleOutcome{SignIn: true, Favorite: current}
	}

	if current {
		if err := c.api.RemoveFavorite(ctx, token, id); err != nil {
			c.prompt.Notify(mutationMessage(err, FavoriteFailedMessage))
			return ToggleOutcome{Favorite: current, Err: err}
		}
		return ToggleOutcome{Favorite: false}
	}

	if err := c.api.AddFavorite(ctx, token, id); err != nil {
		c.prompt.Notify(mutationMessage(err, FavoriteFailedMessage))
		return ToggleOutcome{Favorite: current, Err: err}
	}
	return ToggleOutcome{Favorite: true}
}

// DeleteOutcome reports the result of a delete request.
type DeleteOutcome struct {
	// SignIn means the viewer must authenticate first; no request was issued.
	SignIn bool
	// Deleted means the backend confirmed and the viewer should be taken
	// back to the listing collection.
	Deleted bool
	// Err is the request failure, already surfaced through the prompt.
	Err error
}

// DeleteListing deletes the listing after an explicit confirmation. The
// caller gates this on ownership for display purposes only; the backend is
// the authority and re-validates.
func (c *Controller) DeleteListing(ctx context.Context, sess session.Session, id string) DeleteOutcome {
	if !c.prompt.Confirm(DeleteConfirmMessage) {
		return DeleteOutcome{}
	}
	if !sess.Authenticated() {
		return DeleteOutcome{SignIn: true}
	}
	token, err := c.creds.Token()
	if err != nil || strings.TrimSpace(token) == "" {
		return DeleteOutcome{SignIn: true}
	}

	if err := c.api.DeleteProperty(ctx, token, id); err != nil {
		c.prompt.Notify(mutationMessage(err, DeleteFailedMessage))
		return DeleteOutcome{Err: err}
	}
	c.prompt.Notify(DeletedMessage)
	return DeleteOutcome{Deleted: true}
}

// IsOwner reports whether the session's user owns the listing. This drives
// whether the delete control is offered at all.
func IsOwner(sess session.Session, p *ereft.Property) bool {
	if p == nil || p.Owner == nil {
		return false
	}
	return sess.Authenticated() && sess.UserID == p.Owner.ID
}

// mutationMessage prefers the backend's detail text over the fallback.
func mutationMessage(err error, fallback string) string {
	var apiErr *ereft.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}
	return fallback
}
