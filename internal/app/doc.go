// Package app provides the composition root for the gojo application.
//
// # Overview
//
// This package wires configuration, the listings API client, the credential
// store, and the UI into the complete gojo experience:
//
//  1. Load client configuration from ~/.config/gojo/config.toml
//  2. Load user preferences (theme) from ~/.config/gojo/prefs.toml
//  3. Initialize the HTTP client for the listings API
//  4. Open the credential store and resolve the viewer's session
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Only startup failures are fatal here: an unreadable config file, a bad
// API URL, or an unresolvable credential path. Everything that happens
// after the UI starts (load failures, rejected mutations, missing
// credentials) is absorbed into view state and surfaced on screen; the
// process stays interactive.
//
// # Session Resolution
//
// The viewer's identity is read once at startup from the credential file;
// the bearer token itself is re-read from the same file on every mutation,
// so renewal or logout while gojo is running takes effect on the next
// request.
package app
