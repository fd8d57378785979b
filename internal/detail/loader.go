package detail

import (
	"context"
	"errors"
	"log"

	"github.com/ereft/gojo/internal/ereft"
)

// LoadFailedMessage is the only load-failure text shown to the viewer; the
// actual cause is logged for diagnostics.
const LoadFailedMessage = "Failed to load property details"

// ErrLoadFailed is returned by Loader.Load for every failure class.
var ErrLoadFailed = errors.New(LoadFailedMessage)

// Loader fetches one listing record per identifier.
type Loader struct {
	api  ereft.API
	logf func(format string, args ...any)
}

// NewLoader builds a Loader over the given API client.
func NewLoader(api ereft.API) *Loader {
	return &Loader{api: api, logf: log.Printf}
}

// Load issues a single unauthenticated read for the identifier. Identifiers
// get no client-side validation: the backend rejects bad ones and that
// surfaces here like any other failure.
func (l *Loader) Load(ctx context.Context, id string) (*ereft.Property, error) {
	prop, err := l.api.FetchProperty(ctx, id)
	if err != nil {
		l.logf("fetch listing %s failed: %v", id, err)
		return nil, ErrLoadFailed
	}
	return prop, nil
}
