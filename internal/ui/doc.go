// Package ui provides the Bubble Tea terminal interface for gojo.
//
// # Overview
//
// The UI is a pure projection of the view state held by the root Model:
// a browse screen over the listing collection, the property-detail screen
// with its three mutually exclusive modes (loading, error, loaded), a
// sign-in notice screen, and two overlays (help and the delete
// confirmation modal).
//
// # Architecture
//
// Standard Elm-style Bubble Tea wiring:
//
//   - app.go: root Model, Init/Update/View, messages and commands
//   - browse.go: listing-collection screen
//   - detail.go: property screen and its key handling
//   - modal.go: delete confirmation and sign-in notice
//   - theme.go: lipgloss themes, cycled with T and persisted to prefs
//
// Network work happens only inside tea.Cmd closures; results come back as
// messages, so the render loop never blocks on a request.
//
// # Mutation Flow
//
// A keypress dispatches at most one mutation command. The busy flag is set
// until the result message lands, which both disables further f/d presses
// (no double-toggles racing at the network layer) and drives the "working"
// hint. Confirmation for deletes happens in the modal before the command is
// dispatched; the controller's prompt replays that answer and captures the
// notices that end up on the footer notice bar.
//
// # Navigation
//
// esc from the detail screen returns to the browse screen, which reloads
// its page. A confirmed delete lands there too. Auth-gated actions by an
// anonymous viewer switch to the sign-in screen without issuing a request.
package ui
