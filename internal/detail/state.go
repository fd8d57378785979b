package detail

import "github.com/ereft/gojo/internal/ereft"

// State enumerates the mutually exclusive display modes of the detail
// screen.
type State int

const (
	StateLoading State = iota
	StateError
	StateLoaded
)

// Model holds the ephemeral view state for one listing visit. It is
// reconstructed whenever the listing identifier changes and never persists
// across visits.
type Model struct {
	ListingID string
	State     State

	// Message is the user-facing error text; set only in StateError.
	Message string

	// Property and Favorite are set only in StateLoaded. Favorite is the
	// client-local flag seeded from the record and patched on confirmed
	// toggles.
	Property *ereft.Property
	Favorite bool
}

// NewModel starts a fresh visit for the given listing identifier.
func NewModel(id string) Model {
	return Model{ListingID: id, State: StateLoading}
}

// Reset re-arms the model for a different identifier, discarding everything
// from the previous visit.
func (m *Model) Reset(id string) {
	*m = NewModel(id)
}

// SetLoaded records a successful fetch and seeds the favorite flag from the
// server-computed field.
func (m *Model) SetLoaded(p *ereft.Property) {
	m.State = StateLoaded
	m.Property = p
	m.Favorite = p.IsFavorited
	m.Message = ""
}

// SetError records a failed fetch with its user-facing message.
func (m *Model) SetError(message string) {
	m.State = StateError
	m.Message = message
	m.Property = nil
	m.Favorite = false
}

// SetFavorite patches the local favorite flag after a confirmed toggle. It
// has no effect outside StateLoaded.
func (m *Model) SetFavorite(flag bool) {
	if m.State != StateLoaded {
		return
	}
	m.Favorite = flag
}
